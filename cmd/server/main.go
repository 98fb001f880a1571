package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/router"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	useradapters "account_backend/internal/feature/user/adapters"
	userhandler "account_backend/internal/feature/user/transport/handler"
	userusecase "account_backend/internal/feature/user/usecase"
	"account_backend/internal/platform/cache"
	infradb "account_backend/internal/platform/db"
	jwtmw "account_backend/internal/platform/jwt"
	infraredis "account_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using process environment.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := useradapters.NewUserGorm(db)
	cachedUserRepo := cache.NewCachingUserRepository(rdb, 5*time.Minute, userRepo, "users")

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	expiration := 24 * time.Hour
	if h := os.Getenv(jwtmw.EnvKeyJWTExpirationHours); h != "" {
		if parsed, err := strconv.Atoi(h); err == nil && parsed > 0 {
			expiration = time.Duration(parsed) * time.Hour
		}
	}
	tokenGen := jwtmw.NewGenerator(secret, expiration)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	userUC := userusecase.NewUserUsecase(cachedUserRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)

	r := router.NewRouter(authH, userH, cachedUserRepo)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
