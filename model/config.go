package model

// ServerConfig 定义了每个服务器的配置
type ServerConfig struct {
	Name    string `json:"name" mapstructure:"name"`
	GuildID string `json:"guild_id" mapstructure:"guild_id"`
	Enable  bool   `json:"enable" mapstructure:"enable"`
}

// Config 存储应用程序的配置
type Config struct {
	BotToken      string
	AppID         string
	LogWebhookURL string
	DBPath        string
	ServerConfigs map[string]ServerConfig
}
