// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command korucli prints the configuration korugl would run with,
// after applying the given .env files and the environment.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/korugl/core"
)

func main() {
	cfg, err := core.LoadConfiguration(os.Args[1:]...)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := core.NewLogger(cfg.Log); err != nil {
		log.WithError(err).Warn("Log configuration is invalid")
	}

	if bytes, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.Fatal(err)
	}
}
