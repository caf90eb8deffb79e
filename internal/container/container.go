package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/config"
	"github.com/postpilot/postpilot/internal/infrastructure/memory"
	"github.com/postpilot/postpilot/pkg/helpers"
	"github.com/postpilot/postpilot/pkg/instagram"
	"github.com/postpilot/postpilot/pkg/suggest"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client
	memStore    *memory.Store

	jwtManager *helpers.JWTManager

	rabbitPub       *helpers.RabbitPublisher
	esClient        *elasticsearch.Client
	instagramClient *instagram.Client
	suggestClient   *suggest.Client
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetGCS(s *storage.Client)     { gcsClient = s }
func GetGCS() *storage.Client      { return gcsClient }
func SetMemStore(s *memory.Store)  { memStore = s }
func GetMemStore() *memory.Store   { return memStore }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }
func SetInstagram(c *instagram.Client)        { instagramClient = c }
func GetInstagram() *instagram.Client         { return instagramClient }
func SetSuggest(c *suggest.Client)            { suggestClient = c }
func GetSuggest() *suggest.Client             { return suggestClient }
