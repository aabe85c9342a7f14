// Copyright 2026 The go-hwmock Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// boardsim drives the mock peripheral layer through a scripted card-tap
// sequence, as a quick end-to-end check that the layer behaves like a
// board: it seeds state from an optional YAML profile, polls the reader,
// serves a status route, and prints the captured console output.
package main

import (
	"flag"
	"fmt"
	"os"

	hwmock "github.com/hostboard/go-hwmock"
	"github.com/hostboard/go-hwmock/board"
	"github.com/hostboard/go-hwmock/pkg/str"
	"github.com/hostboard/go-hwmock/rc522"
	"github.com/hostboard/go-hwmock/serialmon"
	"github.com/hostboard/go-hwmock/webserver"
	"github.com/hostboard/go-hwmock/wifi"
)

type config struct {
	profilePath string
	console     string
	taps        int
	debug       bool
}

// Package-level flag variables
var (
	flagProfile string
	flagConsole string
	flagTaps    int
	flagDebug   bool
)

func init() {
	flag.StringVar(&flagProfile, "profile", "", "YAML board profile to seed the mocks with")
	flag.StringVar(&flagConsole, "console", "", "Host serial port to mirror console output to")
	flag.IntVar(&flagTaps, "taps", 1, "Number of card taps to simulate")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug output")
}

func parseConfig() *config {
	cfg := &config{
		profilePath: flagProfile,
		console:     flagConsole,
		taps:        flagTaps,
		debug:       flagDebug,
	}

	if cfg.debug {
		hwmock.SetDebugEnabled(true)
	}

	return cfg
}

func seedFromProfile(cfg *config, reader *rc522.Reader) error {
	if cfg.profilePath == "" {
		return nil
	}
	profile, err := hwmock.LoadProfile(cfg.profilePath)
	if err != nil {
		return err
	}
	if err := profile.Apply(); err != nil {
		return err
	}
	return profile.ApplyCard(reader)
}

// runScenario boots the simulated board and performs taps card taps,
// writing progress to the console stub.
func runScenario(cfg *config, console *serialmon.Monitor, reader *rc522.Reader, server *webserver.Server) {
	console.Begin(115200)
	console.Println("boardsim: boot")

	reader.PCDInit()
	if version := reader.PCDReadRegister(rc522.RegVersion); version != rc522.ChipVersion {
		console.Printf("unexpected reader version: 0x%02X\n", version)
	}

	hwmock.WiFi.Begin("boardsim-net")
	console.Printf("wifi status: %v ip: %s\n", hwmock.WiFi.Status(), hwmock.WiFi.LocalIP())

	server.On("/status", func() {
		body := str.Of("wifi=").ConcatStr(hwmock.WiFi.Status().String())
		server.Send(200, "text/plain", body)
	})
	server.Begin()

	for tap := 0; tap < cfg.taps; tap++ {
		if !reader.PICCIsNewCardPresent() {
			console.Println("no card present")
			board.Delay(250)
			continue
		}
		if !reader.PICCReadCardSerial() {
			console.Println("card present but read failed")
			board.Delay(250)
			continue
		}
		console.Printf("card read: uid=% X size=%d at t=%dms\n",
			reader.UID.Bytes[:reader.UID.Size], reader.UID.Size, board.Millis())
		reader.PICCHaltA()
		board.Delay(500)
	}

	// Hit the status route the way a test would: invoke the registered
	// handler directly.
	if handler := server.Handler("/status"); handler != nil {
		handler()
		resp := server.Response()
		console.Printf("GET /status -> %d %s %s\n", resp.Code, resp.ContentType, resp.Body)
	}

	console.Printf("boardsim: done, simulated time %dms\n", board.Millis())
}

func run() error {
	cfg := parseConfig()

	if cfg.console != "" {
		if err := hwmock.Serial.AttachPort(cfg.console, 115200); err != nil {
			return err
		}
		defer func() {
			if err := hwmock.Serial.DetachPort(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Failed to detach console port: %v\n", err)
			}
		}()
	}

	hwmock.ResetAll()

	reader := rc522.New(5, 27)
	server := webserver.New(80)

	if err := seedFromProfile(cfg, reader); err != nil {
		return err
	}
	if wifiStatus := hwmock.WiFi.Status(); wifiStatus == wifi.StatusDisconnected && cfg.debug {
		hwmock.Debugln("wifi left disconnected; profile had no wifi section")
	}

	runScenario(cfg, hwmock.Serial, reader, server)

	_, _ = fmt.Print(hwmock.Serial.Output())
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "boardsim: %v\n", err)
		os.Exit(1)
	}
}
