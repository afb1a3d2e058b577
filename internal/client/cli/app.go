package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/lifementor/lifementor-cli/internal/client/api"
	"github.com/lifementor/lifementor-cli/internal/client/auth"
	"github.com/lifementor/lifementor-cli/internal/client/config"
	"github.com/lifementor/lifementor-cli/internal/client/services"
	"github.com/lifementor/lifementor-cli/internal/client/session"
	"github.com/lifementor/lifementor-cli/internal/logging"
)

// App holds the wired client stack and implements the REPL commands.
type App struct {
	config     *config.Config
	session    *session.Store
	provider   *auth.Provider
	profile    services.ProfileService
	assessment services.AssessmentService
	stats      services.StatsService
	reader     *bufio.Reader
	log        logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	sess, err := session.NewStore(c.SessionDir)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, c.RequestTimeout, sess, api.NewWriterNotifier(os.Stderr), log)

	authSvc := services.NewAuthService(apiClient, sess)
	provider := auth.NewProvider(authSvc, sess, log)

	// An unauthorized response anywhere drops the session and the prompt
	// falls back to the signed-out state.
	apiClient.SetUnauthorizedHook(func() {
		provider.ForceLogout()
		printlnFn("Session expired, please log in again.")
	})

	return &App{
		config:     c,
		session:    sess,
		provider:   provider,
		profile:    services.NewProfileService(apiClient, sess),
		assessment: services.NewAssessmentService(apiClient),
		stats:      services.NewStatsService(),
		reader:     bufio.NewReader(os.Stdin),
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.provider.IsAuthenticated()
}
