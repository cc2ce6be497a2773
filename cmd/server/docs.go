package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Trade Journal API
// @version         0.1.0
// @description     Trading journal: trades, accounts, dashboard statistics, and balance history.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
