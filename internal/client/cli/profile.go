package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/common"
)

// profileFetchDelay debounces the automatic profile fetch: the view waits
// this long before hitting the network, and a cancelled context during the
// wait skips the fetch entirely. At most one fetch happens per view.
var profileFetchDelay = 100 * time.Millisecond

// Profile fetches and displays the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	timer := time.NewTimer(profileFetchDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	user, err := a.profile.GetProfile(ctx)
	if err != nil {
		reportErr(err)
		return err
	}
	a.provider.Refresh()

	printUser(user)
	return nil
}

func printUser(u *models.UserProfile) {
	printlnFn("Name:          ", u.Name)
	printlnFn("Email:         ", u.Email)
	printlnFn("Email verified:", u.EmailVerified)
	if u.PhoneNumber != "" {
		printlnFn("Phone:         ", u.PhoneNumber)
	}
	if u.DateOfBirth != "" {
		printlnFn("Date of birth: ", u.DateOfBirth)
	}
	if u.Gender != "" {
		printlnFn("Gender:        ", u.Gender)
	}
	if u.Bio != "" {
		printlnFn("Bio:           ", u.Bio)
	}
	if u.ProfilePictureURL != "" {
		printlnFn("Picture:       ", u.ProfilePictureURL)
	}
	if u.LastLogin != "" {
		printlnFn("Last login:    ", u.LastLogin)
	}
}

// EditProfile prompts for the editable profile fields and submits only the
// ones the user filled in; empty answers leave the field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	updates := map[string]any{}

	name, err := getSimpleText(a.reader, "Name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		updates["name"] = name
	}

	phone, err := getSimpleText(a.reader, "Phone number (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if phone != "" {
		updates["phoneNumber"] = phone
	}

	dob, err := getSimpleText(a.reader, "Date of birth, YYYY-MM-DD (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if dob != "" {
		updates["dateOfBirth"] = dob
	}

	gender, err := getSimpleText(a.reader, "Gender (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if gender != "" {
		updates["gender"] = gender
	}

	bio, err := getMultiline(a.reader, "Bio (empty to keep):", os.Stdout)
	if err != nil {
		return err
	}
	if bio != "" {
		updates["bio"] = bio
	}

	if len(updates) == 0 {
		printlnFn("Nothing to update.")
		return nil
	}

	user, err := a.profile.UpdateProfile(ctx, updates)
	if err != nil {
		reportErr(err)
		return err
	}
	a.provider.Refresh()

	printlnFn("Profile updated.")
	printUser(user)
	return nil
}

// ChangePassword prompts for the current and new passwords and submits the
// change. The password byte slices are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	msg, err := a.profile.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		reportErr(err)
		return err
	}

	if msg == "" {
		msg = "Password changed."
	}
	printlnFn(msg)
	return nil
}

// UploadPicture reads a local image file and uploads it as the profile
// picture. The server enforces the size limit; an oversized file surfaces
// as its dedicated error message.
func (a *App) UploadPicture(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		reportErr(err)
		return err
	}
	defer f.Close()

	url, err := a.profile.UploadPicture(ctx, filepath.Base(path), f)
	if err != nil {
		reportErr(err)
		return err
	}
	a.provider.Refresh()

	printlnFn("Picture uploaded:", url)
	return nil
}

// DeletePicture removes the profile picture.
func (a *App) DeletePicture(ctx context.Context) error {
	if err := a.profile.DeletePicture(ctx); err != nil {
		reportErr(err)
		return err
	}
	a.provider.Refresh()

	printlnFn("Picture removed.")
	return nil
}

// Deactivate marks the account as deactivated on the server. The session
// stays; signing in again reactivates the account.
func (a *App) Deactivate(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "Type 'yes' to deactivate your account", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	msg, err := a.profile.DeactivateAccount(ctx)
	if err != nil {
		reportErr(err)
		return err
	}

	if msg == "" {
		msg = "Account deactivated."
	}
	printlnFn(msg)
	return nil
}

// DeleteAccount permanently deletes the account and drops the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	confirm, err := getSimpleText(a.reader, "Type 'delete' to permanently delete your account", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "delete" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.profile.DeleteAccount(ctx); err != nil {
		reportErr(err)
		return err
	}
	a.provider.ForceLogout()

	printlnFn("Account deleted.")
	return nil
}
