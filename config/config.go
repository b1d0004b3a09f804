package config

import (
	"os"
	"time"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Map        MapConfig
	Filter     FilterConfig
	Profile    ProfileConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StorageConfig struct {
	// DSN for the MySQL-backed snapshot store. Empty means in-memory only
	// (events reset to the seed set on restart).
	DSN             string
	SnapshotKey     string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// MapConfig describes the flat world-map surface and its zoom behaviour.
type MapConfig struct {
	CanvasWidth  float64
	CanvasHeight float64
	ZoomFactor   float64
	MinScale     float64
	MaxScale     float64
}

type FilterConfig struct {
	DefaultLat    float64
	DefaultLon    float64
	DefaultRadius float64
}

// ProfileConfig carries the single local identity and the shared media
// defaults every event falls back to.
type ProfileConfig struct {
	Creator      string
	DefaultImage string
	DefaultReels []string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			Env:          envOr("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			DSN:             os.Getenv("STORAGE_DSN"),
			SnapshotKey:     "connected_events",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Map: MapConfig{
			CanvasWidth:  1000,
			CanvasHeight: 500,
			ZoomFactor:   1.5,
			MinScale:     0.5,
			MaxScale:     8,
		},
		Filter: FilterConfig{
			// Columbia, Missouri
			DefaultLat:    38.9517,
			DefaultLon:    -92.3341,
			DefaultRadius: 100,
		},
		Profile: ProfileConfig{
			Creator:      "Jane Doe",
			DefaultImage: "https://images.pexels.com/photos/21014/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=800",
			DefaultReels: []string{
				"https://images.pexels.com/photos/1287145/pexels-photo-1287145.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1415131/pexels-photo-1415131.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/208821/pexels-photo-208821.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/3523519/pexels-photo-3523519.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
