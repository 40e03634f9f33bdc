package main

import (
	"flag"
	_ "net/http/pprof"

	"github.com/hallowlabs/academy-backend/api/router"
	"github.com/hallowlabs/academy-backend/app"
	"github.com/hallowlabs/academy-backend/chain"
	"github.com/hallowlabs/academy-backend/config"
	"github.com/hallowlabs/academy-backend/service/svc"
)

const defaultConfigPath = "./config/config.toml"

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()
	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	for _, cs := range c.ChainSupported {
		if cs.Name == "" || chain.Name(cs.ChainID) != cs.Name {
			panic("unsupported chain in chain_supported config: " + cs.Name)
		}
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)
	app, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	app.Start()
}
