package infra

import (
	"fmt"
	"os"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// LoadModel reads the casbin model text once so every company enforcer can
// be built from it without touching the filesystem again.
func LoadModel(modelPath string) (string, error) {
	b, err := os.ReadFile(modelPath)
	if err != nil {
		return "", fmt.Errorf("read rbac model: %w", err)
	}
	return string(b), nil
}

func NewEnforcer(modelText string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
