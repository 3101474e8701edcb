package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	StorageDir                               string
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from dir. A missing file is not an
// error: defaults and SCHEDULER_* environment variables still apply.
func LoadSchedulerConfig(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("log.level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 3)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{3, 6})

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config.yaml not found, using defaults")
	}

	return &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		StorageDir:                               v.GetString("storage.dir"),
		LogLevel:                                 v.GetString("log.level"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}, nil
}
