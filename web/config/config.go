package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/Astemirdum/shelfshare/pkg/kafka"
	"github.com/Astemirdum/shelfshare/pkg/logger"
	"github.com/Astemirdum/shelfshare/pkg/tracing"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"WEB_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"WEB_HTTP_PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

// Upstream is the remote ShelfShare REST API every page and the relay talk to.
type Upstream struct {
	Origin string `envconfig:"UPSTREAM_ORIGIN" required:"true"`
	// Timeout of zero means upstream calls are never cut short.
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT"`
}

func (u Upstream) URL() (*url.URL, error) {
	return url.Parse(u.Origin)
}

type Gate struct {
	CookieName string   `envconfig:"SESSION_COOKIE" default:"token"`
	LoginPath  string   `envconfig:"GATE_LOGIN_PATH" default:"/login"`
	FeedPath   string   `envconfig:"GATE_FEED_PATH" default:"/feed"`
	AuthOnly   []string `envconfig:"GATE_AUTH_ONLY" default:"/login,/signup"`
	Matcher    []string `envconfig:"GATE_MATCHER" default:"/,/books/:path*,/feed/:path*,/profile/:path*,/dashboard/:path*,/book/:path*,/requests/:path*,/library/:path*,/login,/signup"`
}

type Flash struct {
	Secret string `envconfig:"FLASH_SECRET" default:"shelfshare-flash"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Upstream Upstream
	Gate     Gate
	Flash    Flash `json:"-"`
	Kafka    kafka.Config
	Tracing  tracing.Config
	Log      logger.Log `yaml:"log"`

	// SupportEmail is shown to users who cannot sign in.
	SupportEmail string `envconfig:"SUPPORT_EMAIL" default:"support@shelfshare.dev"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if _, err := config.Upstream.URL(); err != nil {
			log.Fatal("NewConfig upstream origin ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

// NewGateConfig reads only the gate settings, so the gate can be inspected
// without an upstream configured.
func NewGateConfig() (Gate, error) {
	var g Gate
	err := envconfig.Process("", &g)
	return g, err
}
