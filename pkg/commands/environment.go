package commands

import (
	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/session"
	"tableflip.dev/eventscout/pkg/store"
)

// environment is the wiring every command shares: config, the persisted
// session and an API client that reads its bearer token from that session.
type environment struct {
	Config  store.Config
	Session *session.Store
	Client  *api.Client
}

func loadEnvironment() (*environment, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := store.OpenCredentials(cfg)
	if err != nil {
		return nil, err
	}
	sess, err := session.Load(creds)
	if err != nil {
		return nil, err
	}
	return &environment{
		Config:  cfg,
		Session: sess,
		Client:  api.New(cfg.BaseURL(), api.WithTokenSource(sess)),
	}, nil
}
