package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	ModeShell = "shell"
	ModeHTTP  = "http"
)

type Config struct {
	DataDir    string // каталог с прайс-листами
	OutputFile string // куда писать HTML-отчёт
	Mode       string // shell | http
	Host       string
	Port       int
	LogLevel   string
	LogFile    string
}

// Load читает окружение; дефолты повторяют поведение без настроек:
// data/ -> price_list.html -> интерактивный поиск.
func Load() Config {
	port, err := strconv.Atoi(getenv("PORT", "8082"))
	if err != nil || port <= 0 {
		port = 8082
	}
	mode := strings.ToLower(strings.TrimSpace(getenv("MODE", ModeShell)))
	if mode != ModeHTTP {
		mode = ModeShell
	}
	return Config{
		DataDir:    getenv("DATA_DIR", "data/"),
		OutputFile: getenv("OUTPUT_FILE", "price_list.html"),
		Mode:       mode,
		Host:       getenv("HOST", "127.0.0.1"),
		Port:       port,
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFile:    getenv("LOG_FILE", "logs/price-analyzer.log"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
