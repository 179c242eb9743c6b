package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает логирование http запросов.
// Tags задает набор полей записи лога
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault используется, когда конфигурация не задана
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
