//go:build tools
// +build tools

// Package tools lists the module's library dependencies under the tools
// build tag, so `go mod tidy` keeps them even if an import elsewhere is
// removed.
package tools

import (
	_ "github.com/aws/aws-sdk-go-v2"
	_ "github.com/aws/aws-sdk-go-v2/credentials"
	_ "github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/blevesearch/bleve/v2"
	_ "github.com/google/uuid"
	_ "github.com/gorilla/mux"
	_ "github.com/gorilla/websocket"
	_ "github.com/joho/godotenv"
	_ "github.com/nats-io/nats.go"
	_ "github.com/redis/go-redis/v9"
	_ "github.com/stretchr/testify"
)
