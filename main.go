// Command game2048 starts the 2048 game server.
//
// It supports two modes:
//  1. "server" (default) – runs the HTTP server exposing REST API, WebSocket, the browser client and an /mcp HTTP endpoint
//  2. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, config and session directories, debug logging,
// version output, and optional ngrok tunneling for external access during development.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/game2048/api"
	"github.com/wricardo/mcp-training/game2048/game/config"
	"github.com/wricardo/mcp-training/game2048/game/service"
	"github.com/wricardo/mcp-training/game2048/game/session"
	"github.com/wricardo/mcp-training/game2048/transport/mcp"
	"github.com/wricardo/mcp-training/game2048/transport/websocket"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "2048 Game Server"
)

const (
	sessionMaxAge       = 24 * time.Hour
	cleanupInterval     = 1 * time.Hour
	filesystemSyncEvery = 5 * time.Second
)

// Configuration flags control how the server starts and which services are enabled.
var (
	port         = flag.Int("port", 8080, "HTTP server port")
	host         = flag.String("host", "localhost", "HTTP server host")
	configDir    = flag.String("config-dir", envOrDefault("CONFIG_DIR", "configs"), "Directory containing game configurations")
	sessionsDir  = flag.String("sessions-dir", os.Getenv("SESSIONS_DIR"), "Directory for persisted sessions (empty keeps sessions in memory only)")
	defaultCfg   = flag.String("default-config", os.Getenv("DEFAULT_CONFIG"), "Config id used when a session is created without one (default classic)")
	debug        = flag.Bool("debug", false, "Enable debug logging")
	version      = flag.Bool("version", false, "Show version information")
	ngrokEnabled = flag.Bool("ngrok", false, "Enable ngrok tunnel")
	ngrokAuth    = flag.String("ngrok-auth", "", "Ngrok auth token (or use NGROK_AUTHTOKEN env var)")
	ngrokDomain  = flag.String("ngrok-domain", "", "Custom ngrok domain (optional)")
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [MODE]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		fmt.Fprintf(os.Stderr, "  server, http     Run HTTP server with API, WebSocket, and MCP endpoint (default)\n")
		fmt.Fprintf(os.Stderr, "  stdio-mcp        Run MCP stdio server with internal HTTP server\n")
		fmt.Fprintf(os.Stderr, "  mcp-stdio        Alias for stdio-mcp\n")
		fmt.Fprintf(os.Stderr, "  mcp              Alias for stdio-mcp\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                             # Run HTTP server on default port 8080\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090                  # Run HTTP server on port 9090\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -sessions-dir sessions      # Persist sessions to ./sessions\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -default-config modern      # New sessions start from one tile\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s stdio-mcp                   # Run MCP stdio server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSend SIGHUP to reload configurations from -config-dir.\n")
	}
}

// main parses flags, initializes services, and starts the selected mode.
func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	args := flag.Args()
	mode := "server"
	if len(args) > 0 {
		mode = args[0]
	}

	log.Printf("Starting %s v%s (mode: %s)", AppName, Version, mode)

	gameService, configManager, err := initializeServices(*configDir, *sessionsDir, *defaultCfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	switch mode {
	case "stdio-mcp", "mcp-stdio", "mcp":
		runStdioMCPWithInternalServer(gameService)

	case "server", "http":
		runHTTPServer(gameService, configManager)

	default:
		log.Fatalf("Unknown mode: %s. Use 'server' (default) or 'stdio-mcp'", mode)
	}
}

// newRouter mounts the API server at the root and the MCP proxy at /mcp
func newRouter(apiServer http.Handler, mcpClient *mcp.Client) *http.ServeMux {
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHandler(mcpClient.GetMCPServer()))
	return mainRouter
}

// mcpHandler answers one JSON-RPC message per POST
func mcpHandler(mcpServer *server.MCPServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpServer.HandleMessage(r.Context(), body)
		if response == nil {
			// notifications get no reply
			w.WriteHeader(http.StatusAccepted)
			return
		}

		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(responseData)
	}
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled (via flag or environment), it also provisions a public tunnel.
// SIGHUP reloads the game configurations; sessions are flushed to persistence on shutdown.
func runHTTPServer(gameService service.GameService, configManager *config.Manager) {
	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))
	mainRouter := newRouter(apiServer, mcpClient)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("Game UI: http://%s/", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	ngrokShouldRun := *ngrokEnabled
	if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
		ngrokShouldRun = true
	}

	if ngrokShouldRun {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, mainRouter)
		}()
	}

	var sig os.Signal
	for sig == nil {
		select {
		case <-reload:
			if err := reloadConfigs(configManager, *defaultCfg); err != nil {
				log.Printf("Warning: Failed to reload configurations: %v", err)
				continue
			}
			log.Println("Reloaded game configurations")
		case sig = <-stop:
		}
	}
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	if err := gameService.SaveAllSessions(shutdownCtx); err != nil {
		log.Printf("Warning: Failed to save sessions on shutdown: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
}

// runNgrokTunnel serves handler through an ngrok endpoint until ctx is cancelled
func runNgrokTunnel(ctx context.Context, handler http.Handler) {
	authToken := *ngrokAuth
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTH_TOKEN")
	}
	if authToken == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	domain := *ngrokDomain
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Printf("Using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Printf("Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  Game UI (ngrok): %s/", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// initializeServices wires session/config managers and the game service.
// Sessions are persisted only when sessionsDir is set. A non-empty
// defaultConfig replaces classic as the config for sessions created without one.
func initializeServices(configDir, sessionsDir, defaultConfig string) (service.GameService, *config.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if defaultConfig != "" {
		if err := configManager.SetDefault(defaultConfig); err != nil {
			return nil, nil, fmt.Errorf("failed to set default config %q: %w", defaultConfig, err)
		}
	}

	sessionManager := session.NewManager()
	var persistence session.SessionPersistence
	if sessionsDir != "" {
		persistence, err = session.NewFilePersistence(sessionsDir, configManager)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
		}
		sessionManager = session.NewManagerWithPersistence(persistence)

		if err := sessionManager.LoadPersistedSessions(); err != nil {
			log.Printf("Warning: Failed to load persisted sessions: %v", err)
		}
	}

	gameService := service.NewGameService(sessionManager, configManager)

	go sessionCleanupRoutine(sessionManager)
	if persistence != nil {
		go filesystemSyncRoutine(sessionManager, persistence)
	}

	return gameService, configManager, nil
}

// reloadConfigs drops cached configurations and re-applies the default
func reloadConfigs(configManager *config.Manager, defaultConfig string) error {
	if err := configManager.RefreshCache(); err != nil {
		return err
	}
	if defaultConfig == "" {
		return nil
	}
	return configManager.SetDefault(defaultConfig)
}

// sessionCleanupRoutine periodically evicts sessions that have not been
// accessed within sessionMaxAge
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		if removed := manager.CleanupExpiredSessions(sessionMaxAge); removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically drops sessions from memory whose files were deleted
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(filesystemSyncEvery)
	defer ticker.Stop()

	for range ticker.C {
		if pruned := pruneOrphanedSessions(manager, persistence); pruned > 0 {
			log.Printf("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}

func pruneOrphanedSessions(manager *session.Manager, persistence session.SessionPersistence) int {
	pruned := 0
	for _, sess := range manager.List() {
		if persistence.Exists(sess.ID) {
			continue
		}
		if err := manager.DeleteFromMemory(sess.ID); err == nil {
			pruned++
			log.Printf("Pruned session %s from memory (file deleted)", sess.ID)
		}
	}
	return pruned
}

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It tries to reuse an external API at http://localhost:<port>; if unavailable, it
// starts a minimal internal HTTP API bound to a random loopback port and targets that.
func runStdioMCPWithInternalServer(gameService service.GameService) {
	externalURL := fmt.Sprintf("http://localhost:%d", *port)
	log.Printf("Checking for external API server at %s...", externalURL)

	baseURL := externalURL
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil {
		resp.Body.Close()
	}
	if err == nil && resp.StatusCode < 500 {
		log.Printf("External API server found at %s, using it for MCP", externalURL)
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatalf("Failed to get available port: %v", err)
		}
		internalAddr := listener.Addr().String()
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		httpServer := &http.Server{
			Handler: api.NewServer(gameService, hub),
		}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Printf("MCP stdio server ready (API at %s)", baseURL)

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		log.Fatalf("MCP stdio server error: %v", err)
	}
}
