// Package catalog holds the static vocabularies backing the wizard:
// the connector catalog, license, domain and department lists, and the
// default metric glossary. The built-in catalog can be overridden by a
// YAML file for deployments with a different connector lineup.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Connector is one data source a customer can toggle on during
// onboarding.
type Connector struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// Catalog is the full connector lineup.
type Catalog struct {
	Connectors []Connector `yaml:"connectors" json:"connectors"`
}

// Default returns the built-in connector catalog.
func Default() Catalog {
	return Catalog{Connectors: []Connector{
		{Key: "meta", Name: "Meta Ads", Category: "Ads"},
		{Key: "google_ads", Name: "Google Ads", Category: "Ads"},
		{Key: "tiktok", Name: "TikTok", Category: "Social"},
		{Key: "instagram", Name: "Instagram", Category: "Social"},
		{Key: "youtube", Name: "YouTube", Category: "Streaming"},
		{Key: "spotify", Name: "Spotify for Artists", Category: "Streaming"},
		{Key: "apple_music", Name: "Apple Music for Artists", Category: "Streaming"},
		{Key: "soundcloud", Name: "SoundCloud", Category: "Streaming"},
		{Key: "m365", Name: "Microsoft 365", Category: "Office"},
		{Key: "gsuite", Name: "Google Workspace", Category: "Office"},
		{Key: "linkedin", Name: "LinkedIn", Category: "Social"},
		{Key: "crm_salesforce", Name: "Salesforce", Category: "CRM"},
		{Key: "erp_netsuite", Name: "NetSuite", Category: "ERP"},
		{Key: "bi_tableau", Name: "Tableau Cloud", Category: "BI"},
		{Key: "bi_lookerstudio", Name: "Looker Studio", Category: "BI"},
		{Key: "daw_ableton", Name: "Ableton Live", Category: "DAW"},
		{Key: "websites", Name: "Websites (GA4)", Category: "Web"},
		{Key: "storage_s3", Name: "AWS S3", Category: "Storage"},
	}}
}

// Load reads a catalog override from a YAML file. A catalog with no
// connectors is rejected so a bad file cannot silently empty the
// wizard.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read connector catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse connector catalog: %w", err)
	}
	if len(c.Connectors) == 0 {
		return Catalog{}, fmt.Errorf("connector catalog %s defines no connectors", path)
	}
	for _, conn := range c.Connectors {
		if conn.Key == "" || conn.Name == "" {
			return Catalog{}, fmt.Errorf("connector catalog %s has an entry without key or name", path)
		}
	}
	return c, nil
}

// Lookup finds a connector by key.
func (c Catalog) Lookup(key string) (Connector, bool) {
	for _, conn := range c.Connectors {
		if conn.Key == key {
			return conn, true
		}
	}
	return Connector{}, false
}

// Keys returns every connector key in catalog order.
func (c Catalog) Keys() []string {
	out := make([]string, 0, len(c.Connectors))
	for _, conn := range c.Connectors {
		out = append(out, conn.Key)
	}
	return out
}

// Licenses, Domains and Departments are the fixed select vocabularies
// of the wizard forms.
var (
	Licenses    = []string{"Enterprise", "Pro", "Label Services", "Indie"}
	Domains     = []string{"Label", "Management", "Distributor", "Publisher", "Agency", "Other"}
	Departments = []string{"Marketing", "A&R", "Finance", "Ops", "Legal", "Data/BI", "Product", "Other"}
)

// GlossaryItem is one entry of the metric/dimension glossary seeded
// during the semantic-layer step.
type GlossaryItem struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Entity      string `json:"entity,omitempty"`
	Calc        string `json:"calc,omitempty"`
}

// DefaultGlossary returns the starter glossary every session begins
// with.
func DefaultGlossary() []GlossaryItem {
	return []GlossaryItem{
		{Key: "Reach", Description: "Unique users reached by content or ads over a period", Entity: "artist"},
		{Key: "Frequency", Description: "Avg. impressions per user", Entity: "artist"},
		{Key: "Streams", Description: "Total streams across DSPs; counted per platform rules", Entity: "artist"},
		{Key: "Saves", Description: "User saved track to library or playlist", Entity: "ip"},
		{Key: "CPS", Description: "Cost per incremental stream (modeled)", Calc: "AdSpend / IncrementalStreams"},
	}
}
