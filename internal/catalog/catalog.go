// Package catalog holds the versioned screening question bank: ordered
// groups, bilingual questions and option sets, and per-question scale
// participation. The bank is compiled in as typed literals; nothing is
// parsed at scoring time. Loading performs no I/O and a load failure is
// fatal to every downstream component.
package catalog

import (
	"encoding/json"
	"fmt"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
)

// Version identifies the current bank. Re-seeding replaces all rows
// carrying a different version; it never patches groups in place.
const Version = "2025.1"

// Option is one bilingual option, index-aligned across languages.
type Option struct {
	EN string
	AR string
}

// Item is one question of the bank.
type Item struct {
	ID       uint
	Code     string
	Type     model.QuestionType
	TextEN   string
	TextAR   string
	Options  []Option
	Required bool
	Scale    *scale.Participation
}

// Text returns the item text in the requested language.
func (it *Item) Text(lang model.Language) string {
	if lang == model.LanguageArabic {
		return it.TextAR
	}
	return it.TextEN
}

// Group is one ordered section of the protocol.
type Group struct {
	Code   string
	NameEN string
	NameAR string
	DescEN string
	DescAR string
	Items  []Item
}

// Catalog is the loaded, validated bank.
type Catalog struct {
	Version string
	Groups  []Group
	byID    map[uint]*Item
	byCode  map[string]*Item
}

// Load builds and validates the bank. Item IDs are assigned sequentially
// in declaration order within a version; only codes are stable across
// versions.
func Load() (*Catalog, error) {
	c := &Catalog{
		Version: Version,
		Groups:  bank(),
		byID:    make(map[uint]*Item),
		byCode:  make(map[string]*Item),
	}

	var nextID uint = 1
	for gi := range c.Groups {
		for qi := range c.Groups[gi].Items {
			it := &c.Groups[gi].Items[qi]
			it.ID = nextID
			nextID++
			c.byID[it.ID] = it
			if _, dup := c.byCode[it.Code]; dup {
				return nil, fmt.Errorf("catalog: duplicate question code %q", it.Code)
			}
			c.byCode[it.Code] = it
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	counts := make(map[scale.Instrument]int)
	for _, g := range c.Groups {
		for _, it := range g.Items {
			if it.Scale == nil {
				continue
			}
			counts[it.Scale.Instrument]++
			def, ok := scale.Definitions[it.Scale.Instrument]
			if !ok {
				return fmt.Errorf("catalog: question %s references unknown instrument %q", it.Code, it.Scale.Instrument)
			}
			switch it.Scale.Instrument {
			case scale.BADL:
				if len(it.Options) != 5 {
					return fmt.Errorf("catalog: BADL question %s has %d options, want 5", it.Code, len(it.Options))
				}
			case scale.Stage:
				if len(it.Options) != 7 {
					return fmt.Errorf("catalog: staging question %s has %d options, want 7", it.Code, len(it.Options))
				}
			case scale.Depression:
				if it.Scale.Direction != scale.YesScoresOne && it.Scale.Direction != scale.NoScoresOne {
					return fmt.Errorf("catalog: depression question %s has no scoring direction", it.Code)
				}
			}
			if it.Scale.Item < 1 || it.Scale.Item > def.ExpectedItems {
				return fmt.Errorf("catalog: question %s item number %d outside 1..%d", it.Code, it.Scale.Item, def.ExpectedItems)
			}
		}
	}
	for inst, def := range scale.Definitions {
		if counts[inst] != def.ExpectedItems {
			return fmt.Errorf("catalog: instrument %s has %d items, want %d", inst, counts[inst], def.ExpectedItems)
		}
	}
	return nil
}

// Question resolves an item by ID. IDs are only meaningful within one
// catalog version; persisted references use QuestionByCode.
func (c *Catalog) Question(id uint) (*Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// QuestionByCode resolves an item by its version-stable code.
func (c *Catalog) QuestionByCode(code string) (*Item, bool) {
	it, ok := c.byCode[code]
	return it, ok
}

// ExpectedItems reports how many items an instrument should contribute.
func (c *Catalog) ExpectedItems(inst scale.Instrument) int {
	return scale.Definitions[inst].ExpectedItems
}

// Models converts the bank into persistable rows, for seeding the database
// wholesale. Option lists are JSON-encoded only here, at load time.
func (c *Catalog) Models() []model.QuestionGroup {
	groups := make([]model.QuestionGroup, 0, len(c.Groups))
	for gi, g := range c.Groups {
		mg := model.QuestionGroup{
			Code:           g.Code,
			NameEN:         g.NameEN,
			NameAR:         g.NameAR,
			DescriptionEN:  g.DescEN,
			DescriptionAR:  g.DescAR,
			Order:          gi + 1,
			CatalogVersion: c.Version,
		}
		for qi, it := range g.Items {
			mq := model.Question{
				Code:         it.Code,
				QuestionType: it.Type,
				TextEN:       it.TextEN,
				TextAR:       it.TextAR,
				Required:     it.Required,
				Order:        qi + 1,
			}
			mq.ID = it.ID
			if len(it.Options) > 0 {
				en := make([]string, len(it.Options))
				ar := make([]string, len(it.Options))
				for i, o := range it.Options {
					en[i] = o.EN
					ar[i] = o.AR
				}
				mq.OptionsEN, _ = json.Marshal(en)
				mq.OptionsAR, _ = json.Marshal(ar)
			}
			if it.Scale != nil {
				mq.Instrument = string(it.Scale.Instrument)
				mq.ScaleItem = it.Scale.Item
				mq.ScoreDirection = string(it.Scale.Direction)
			}
			mg.Questions = append(mg.Questions, mq)
		}
		groups = append(groups, mg)
	}
	return groups
}
