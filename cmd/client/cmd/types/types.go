package types

type contextKey string

// ClientAppKey — ключ, под которым *client.App лежит в контексте команды.
const ClientAppKey contextKey = "app"
