package config

import (
	"strings"

	"github.com/spf13/viper"
)

// envKeyReplacer maps nested keys to env names: backend.project -> BACKEND_PROJECT
var envKeyReplacer = strings.NewReplacer(".", "_")

var backendKeys = []string{
	"backend.endpoint",
	"backend.project",
	"backend.api_key",
	"backend.database",
	"backend.programs_collection",
	"backend.subscribers_collection",
	"backend.messages_collection",
}

// envKeys are bound explicitly; viper.Unmarshal only sees env values for known keys
var envKeys = append(append([]string{}, backendKeys...),
	"backend.timeout",
	"ui.start_route",
	"ui.splash_duration",
	"ui.shake_interval",
	"cache.enabled",
	"cache.dir",
	"opener.command",
	"logging.file",
	"logging.level",
)

func bindEnv(v *viper.Viper) {
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
}
