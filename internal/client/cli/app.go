package cli

import (
	"bufio"
	"fmt"
	"net/http"
	"os"

	"github.com/mycomarket/mycomarket-go/internal/client/api"
	"github.com/mycomarket/mycomarket-go/internal/client/config"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/client/services"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/filex"
	"github.com/mycomarket/mycomarket-go/internal/logging"
)

// appName names the per-user state directory under os.UserConfigDir().
const appName = "mycomarket"

// App owns the wired client stack and the interactive state of the REPL.
type App struct {
	config    *config.Config
	log       logging.Logger
	sessions  *session.Manager
	cache     *query.Cache
	auth      services.AuthService
	forum     services.ForumService
	market    services.MarketService
	farmers   services.FarmerService
	chat      services.ChatService
	community services.CommunityService
	uploads   services.UploadService
	reader    *bufio.Reader
}

// NewApp builds the full client stack from configuration: state directory,
// persisted session, API client, query cache, and the application services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.AppDir(c.ConfigDir, appName)
	if err != nil {
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}

	sessions := session.NewManager(session.NewFileStore(dir))
	cache := query.NewCache(c.CacheTTL)

	app := &App{
		config:   c,
		log:      log,
		sessions: sessions,
		cache:    cache,
		reader:   bufio.NewReader(os.Stdin),
	}

	opts := []api.Option{
		api.WithLogger(log),
		api.WithRateLimit(c.RequestsPerSecond),
		api.WithSessionExpiredHook(app.onSessionExpired),
	}
	if c.RequestTimeout > 0 {
		opts = append(opts, api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}))
	}
	apiClient := api.New(c.APIBaseURL, sessions, opts...)

	app.auth = services.NewAuthService(apiClient, sessions, cache)
	app.forum = services.NewForumService(apiClient, cache)
	app.market = services.NewMarketService(apiClient, cache, sessions)
	app.farmers = services.NewFarmerService(apiClient, cache, sessions)
	app.chat = services.NewChatService(apiClient, cache, c.ConversationPollInterval, c.MessagePollInterval)
	app.community = services.NewCommunityService(apiClient, cache)
	app.uploads = services.NewUploadService(apiClient)

	return app, nil
}

// onSessionExpired fires from the API client after an irrecoverable token
// refresh failure. Local state is already cleared at that point; the REPL
// prompt reflects the logged-out state on its next iteration.
func (a *App) onSessionExpired() {
	a.cache.Clear()
	printlnFn("Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

// getStatus renders the prompt decoration: the user's name (with a farmer
// badge) when a session is restored, nothing otherwise.
func (a *App) getStatus() string {
	p := a.auth.CurrentUser()
	if p == nil {
		return ""
	}
	if p.IsFarmer {
		return fmt.Sprintf("(%s 🍄)", p.FullName)
	}
	return fmt.Sprintf("(%s)", p.FullName)
}

// Close releases background resources (the cache janitor).
func (a *App) Close() {
	a.cache.Stop()
}
