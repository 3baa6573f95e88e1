package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	database "github.com/riskimanta/expense-tracker/internal/db"
	"github.com/riskimanta/expense-tracker/internal/finance/application"
	"github.com/riskimanta/expense-tracker/internal/finance/infrastructure"
	"github.com/riskimanta/expense-tracker/internal/finance/interfaces"
	"github.com/riskimanta/expense-tracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(dbService *database.DBService, userHandler *user.Handler, categoryHandler *interfaces.CategoryHandler, transactionHandler *interfaces.TransactionHandler) *Server {
	return &Server{
		dbService:          dbService,
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		router:             http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	// USER API
	router.Handle("GET /users", http.HandlerFunc(s.userHandler.HandleGetUsers))
	router.Handle("GET /users/{id}", http.HandlerFunc(s.userHandler.HandleGetUser))
	router.Handle("GET /users/email/{email}", http.HandlerFunc(s.userHandler.HandleGetUserByEmail))
	router.Handle("POST /users", http.HandlerFunc(s.userHandler.HandleCreateUser))
	router.Handle("PUT /users/{id}", http.HandlerFunc(s.userHandler.HandleUpdateUser))
	router.Handle("DELETE /users/{id}", http.HandlerFunc(s.userHandler.HandleDeleteUser))
	router.Handle("GET /users/role/{role}", http.HandlerFunc(s.userHandler.HandleGetUsersByRole))
	router.Handle("GET /users/status/{status}", http.HandlerFunc(s.userHandler.HandleGetUsersByStatus))
	router.Handle("GET /users/search", http.HandlerFunc(s.userHandler.HandleSearchUsers))
	router.Handle("GET /users/count/role/{role}", http.HandlerFunc(s.userHandler.HandleCountUsersByRole))

	// CATEGORY API
	router.Handle("GET /categories", http.HandlerFunc(s.categoryHandler.GetCategories))
	router.Handle("GET /categories/{id}", http.HandlerFunc(s.categoryHandler.GetCategory))
	router.Handle("POST /categories", http.HandlerFunc(s.categoryHandler.CreateCategory))
	router.Handle("PUT /categories/{id}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /categories/{id}", http.HandlerFunc(s.categoryHandler.DeleteCategory))
	router.Handle("GET /categories/type/{type}", http.HandlerFunc(s.categoryHandler.GetCategoriesByType))
	router.Handle("GET /categories/user/{userId}", http.HandlerFunc(s.categoryHandler.GetCategoriesByUser))

	// TRANSACTION API
	router.Handle("GET /transactions", http.HandlerFunc(s.transactionHandler.GetTransactions))
	router.Handle("GET /transactions/{id}", http.HandlerFunc(s.transactionHandler.GetTransaction))
	router.Handle("POST /transactions", http.HandlerFunc(s.transactionHandler.CreateTransaction))
	router.Handle("PUT /transactions/{id}", http.HandlerFunc(s.transactionHandler.UpdateTransaction))
	router.Handle("DELETE /transactions/{id}", http.HandlerFunc(s.transactionHandler.DeleteTransaction))
	router.Handle("GET /transactions/user/{userId}", http.HandlerFunc(s.transactionHandler.GetTransactionsByUser))
	router.Handle("GET /transactions/type/{type}", http.HandlerFunc(s.transactionHandler.GetTransactionsByType))
	router.Handle("GET /transactions/category/{categoryId}", http.HandlerFunc(s.transactionHandler.GetTransactionsByCategory))

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(); err != nil {
		log.Fatalf("Could not prepare database schema: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(dbService, userHandler, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Println("Starting perf on port 6060...")
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
