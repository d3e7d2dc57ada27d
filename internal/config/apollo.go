package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts the Apollo client and overrides config
// values when present. Returns a closer to stop the client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&changeListener{ns: ns, client: client, store: store})

	// agollo v4 exposes no Stop API
	closer := func() {}
	return closer, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	str := func(key string, dst *string, allowEmpty bool) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" || allowEmpty {
				*dst = s
			}
		}
	}
	num := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}

	str("app.env", &cfg.AppEnv, false)
	str("server.addr", &cfg.Server.Addr, false)
	str("log.level", &cfg.Log.Level, false)
	str("log.format", &cfg.Log.Format, false)
	str("pg.url", &cfg.PG.URL, false)
	num("pg.max_open", &cfg.PG.MaxOpenConns)
	num("pg.max_idle", &cfg.PG.MaxIdleConns)
	str("redis.addr", &cfg.Redis.Addr, false)
	str("redis.password", &cfg.Redis.Password, true)
	num("redis.db", &cfg.Redis.DB)
	str("mq.url", &cfg.MQ.URL, false)
	str("es.addrs", &cfg.ES.Addrs, false)
	str("es.username", &cfg.ES.Username, true)
	str("es.password", &cfg.ES.Password, true)
	str("es.theme_index", &cfg.ES.Index, false)
	str("jwt.hs_secret", &cfg.JWT.HSSecret, false)
	num("ratelimit.window_sec", &cfg.RateLimit.WindowSec)
	num("ratelimit.max", &cfg.RateLimit.Max)
}

type changeListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeListener) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}

func (c *changeListener) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo newest change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
}
