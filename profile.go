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

package hwmock

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hostboard/go-hwmock/pkg/str"
	"github.com/hostboard/go-hwmock/rc522"
	"github.com/hostboard/go-hwmock/wifi"
)

// Profile describes an initial board state to seed the mocks with before a
// run: network association state, stored settings, and the card sitting on
// the reader. Profiles load from YAML and applying one is idempotent.
type Profile struct {
	WiFi    *WiFiProfile    `yaml:"wifi,omitempty"`
	Storage *StorageProfile `yaml:"storage,omitempty"`
	Card    *CardProfile    `yaml:"card,omitempty"`
}

// WiFiProfile seeds the radio mock.
type WiFiProfile struct {
	// Status is a status name as produced by wifi.Status.String, for
	// example "connected" or "disconnected".
	Status string `yaml:"status"`
	IP     string `yaml:"ip,omitempty"`
}

// StorageProfile seeds the settings store mock with text-encoded entries.
type StorageProfile struct {
	Entries   map[string]string `yaml:"entries,omitempty"`
	Namespace string            `yaml:"namespace,omitempty"`
}

// CardProfile seeds a card-reader mock.
type CardProfile struct {
	// UID is the card identifier in hex, separators optional.
	UID     string `yaml:"uid"`
	Present bool   `yaml:"present"`
	ReadOK  bool   `yaml:"read_ok"`
}

// LoadProfile reads and parses a YAML board profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile parses a YAML board profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if p.WiFi != nil && p.WiFi.Status != "" {
		if _, err := wifi.ParseStatus(p.WiFi.Status); err != nil {
			return nil, fmt.Errorf("invalid profile: %w", err)
		}
	}
	if p.Card != nil {
		if _, err := decodeUID(p.Card.UID); err != nil {
			return nil, fmt.Errorf("invalid profile: %w", err)
		}
	}
	return &p, nil
}

// Apply seeds the global WiFi and Storage mocks from the profile. Card
// readers are per-instance; seed them separately with ApplyCard.
func (p *Profile) Apply() error {
	if p.WiFi != nil {
		if p.WiFi.Status != "" {
			status, err := wifi.ParseStatus(p.WiFi.Status)
			if err != nil {
				return err
			}
			WiFi.SetStatus(status)
		}
		if p.WiFi.IP != "" {
			WiFi.SetLocalIP(p.WiFi.IP)
		}
	}
	if p.Storage != nil {
		if p.Storage.Namespace != "" {
			Storage.Begin(p.Storage.Namespace, false)
		}
		for key, value := range p.Storage.Entries {
			Storage.PutString(key, str.Of(value))
		}
	}
	Debugf("profile applied")
	return nil
}

// ApplyCard seeds a card-reader mock from the profile's card section, if
// present.
func (p *Profile) ApplyCard(r *rc522.Reader) error {
	if p.Card == nil {
		return nil
	}
	uid, err := decodeUID(p.Card.UID)
	if err != nil {
		return err
	}
	r.SetUID(uid)
	r.SetCardPresent(p.Card.Present)
	r.SetReadSucceeds(p.Card.ReadOK)
	return nil
}

// decodeUID parses a hex card identifier, tolerating common separators.
func decodeUID(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", ":", "", "-", "").Replace(s)
	if clean == "" {
		return nil, nil
	}
	uid, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("bad card uid %q: %w", s, err)
	}
	return uid, nil
}
