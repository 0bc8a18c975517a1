package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/textwatch/textwatch/internal/client/api"
	"github.com/textwatch/textwatch/internal/client/config"
	"github.com/textwatch/textwatch/internal/client/credstore"
	"github.com/textwatch/textwatch/internal/client/guard"
	"github.com/textwatch/textwatch/internal/client/services"
	"github.com/textwatch/textwatch/internal/client/session"
	"github.com/textwatch/textwatch/internal/logging"
)

type App struct {
	config    *config.Config
	session   *session.Manager
	auth      services.AuthService
	detection services.DetectionService
	keys      services.KeyService
	profile   services.ProfileService
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	tokenPath, err := credstore.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("resolving token path: %w", err)
	}
	store := credstore.NewFileStore(tokenPath)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	gw := api.NewGateway(c.BaseURL, c.RequestTimeout, store, logger)
	sess := session.NewManager(store)

	// The gateway announces unauthorized responses; the session manager
	// clears the credential in reaction. This is the only automatic
	// de-authentication path. The notice is printed only when there was a
	// session to lose, so a failed fresh login stays quiet.
	gw.OnSessionInvalidated(func() {
		if sess.State() == session.StateAuthenticated {
			log.Println("Session expired, please login again")
		}
	})
	gw.OnSessionInvalidated(sess.Invalidate)

	return &App{
		config:    c,
		session:   sess,
		auth:      services.NewAuthService(gw),
		detection: services.NewDetectionService(gw),
		keys:      services.NewKeyService(gw),
		profile:   services.NewProfileService(gw),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// guardView runs the route guard before a protected view. Called on every
// dispatch, never cached: a gateway-triggered logout must take effect on
// the next navigation.
func (a *App) guardView() bool {
	d := guard.Check(a.session.State())
	if d.Allow {
		return true
	}
	fmt.Printf("Not authenticated, please run '%s' first.\n", d.RedirectTo)
	return false
}

func (a *App) getStatus() string {
	return string(a.session.State())
}
