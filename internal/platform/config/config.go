package config

import "os"

// ContactService captures configuration for the REST contact service.
type ContactService struct {
	Addr        string
	DatabaseURL string
	Environment string
}

// Gateway captures configuration for the GraphQL gateway.
type Gateway struct {
	Addr              string
	ContactServiceURL string
	Environment       string
}

// ContactServiceFromEnv builds contact service config from environment
// variables so main stays lean.
func ContactServiceFromEnv() ContactService {
	addr := os.Getenv("CONTACT_SERVICE_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	return ContactService{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Environment: environment(),
	}
}

// GatewayFromEnv builds gateway config from environment variables.
func GatewayFromEnv() Gateway {
	addr := os.Getenv("GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	backendURL := os.Getenv("CONTACT_SERVICE_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}
	return Gateway{
		Addr:              addr,
		ContactServiceURL: backendURL,
		Environment:       environment(),
	}
}

func environment() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	return env
}
