package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lifementor/lifementor-cli/internal/client/api"
	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// reportErr prints errors the transport layer has not already surfaced.
// API errors are announced by the client's notifier, so repeating them here
// would double the output.
func reportErr(err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return
	}
	printlnFn("Error:", err.Error())
}

// Register prompts for name, email and password and creates a new account.
// On success the session is stored and the user is signed in immediately.
// The password byte slices are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	res := a.provider.Register(ctx, models.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if !res.Success {
		printlnFn(res.Message)
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", res.Data.User.Name))
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the token and user are persisted and the prompt updates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.provider.Login(ctx, email, string(password))
	if !res.Success {
		printlnFn(res.Message)
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", res.Data.User.Name))
	return nil
}

// Logout drops the persisted session. No backend call is made; the token
// simply stops being attached to subsequent requests.
func (a *App) Logout(ctx context.Context) error {
	a.provider.Logout()
	printlnFn("Logged out.")
	return nil
}

// ForgotPassword requests a password reset email for the given address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	res := a.provider.ForgotPassword(ctx, email)
	printlnFn(res.Message)
	return nil
}

// ResetPassword consumes an emailed reset token and sets a new password.
// On success the returned session is stored, signing the user in.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	res := a.provider.ResetPassword(ctx, token, string(password), string(confirm))
	if !res.Success {
		printlnFn(res.Message)
		return nil
	}

	printlnFn("Password updated, you are signed in.")
	return nil
}

// Whoami shows the signed-in user and, when the token carries an expiry
// claim, when the session runs out. The token is decoded without signature
// verification: the server remains the authority, this is display only.
func (a *App) Whoami(ctx context.Context) error {
	user := a.provider.CurrentUser()
	if user == nil {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", user.Name, user.Email))
	if exp := tokenExpiry(a.session.Token()); exp != "" {
		printlnFn("Session expires:", exp)
	}
	return nil
}

func tokenExpiry(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}
	return exp.Time.Local().Format("2006-01-02 15:04:05")
}
