package config

import (
	"log"
	"strings"

	"mod-helper/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load 从多个源加载配置：.env 文件、config.yaml、以及 config/guilds.json。
// 环境变量会覆盖配置文件中的同名设置。
func Load() (*model.Config, error) {
	// 从 .env 文件加载环境变量，如果文件不存在则忽略。
	if err := godotenv.Load(); err != nil {
		log.Println("提示: 未找到.env文件，将依赖环境变量")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("db_path", "data/moderation.db")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("未找到基础配置文件 (config.yaml)，将仅使用环境变量")
		} else {
			return nil, err
		}
	}

	token := viper.GetString("bot_token")
	if token == "" {
		log.Fatal("错误: 未设置BOT_TOKEN环境变量")
	}

	appID := viper.GetString("app_id")
	if appID == "" {
		log.Fatal("错误: 未设置APP_ID环境变量")
	}

	if viper.GetString("log_webhook_url") == "" {
		log.Println("警告: 未设置LOG_WEBHOOK_URL，Webhook日志功能将不可用")
	}

	cfg := &model.Config{
		BotToken:      token,
		AppID:         appID,
		LogWebhookURL: viper.GetString("log_webhook_url"),
		DBPath:        viper.GetString("db_path"),
		ServerConfigs: make(map[string]model.ServerConfig),
	}

	// 合并服务器列表配置 (config/guilds.json)。
	viper.SetConfigName("guilds")
	viper.SetConfigType("json")
	viper.AddConfigPath("./config")
	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("未找到服务器配置文件 (config/guilds.json)，命令将注册为全局命令")
		} else {
			return nil, err
		}
	}
	if err := viper.UnmarshalKey("guilds", &cfg.ServerConfigs); err != nil {
		return nil, err
	}

	return cfg, nil
}
