package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New возвращает middleware логирования запросов.
// Уровень записи зависит от статуса ответа
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := logEntry(cfg, ftm, c, d)
		status := c.Response().StatusCode()
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("запрос api")
		case status >= fiber.StatusBadRequest:
			entry.Warn("запрос api")
		default:
			entry.Info("запрос api")
		}
		return err
	}
}

// logEntry собирает поля записи, пустые строковые значения не пишутся
func logEntry(cfg Config, ftm map[string]FuncTag, c *fiber.Ctx, d *data) *log.Entry {
	fields := make(log.Fields)
	for tag, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok {
			if strValue == "" {
				continue
			}
			fields[tag] = strValue
			continue
		}
		fields[tag] = value
	}
	if cfg.Logger != nil {
		return cfg.Logger.WithFields(fields)
	}
	return log.WithFields(fields)
}
