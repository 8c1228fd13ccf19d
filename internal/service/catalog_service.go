package service

import (
	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/model"
)

// CatalogQuestion is one question localized for form rendering. Scale
// participation is exposed so clients can group instrument items, but the
// option-to-code mapping stays server-side.
type CatalogQuestion struct {
	ID         uint               `json:"id"`
	Code       string             `json:"code"`
	Type       model.QuestionType `json:"type"`
	Text       string             `json:"text"`
	Options    []string           `json:"options,omitempty"`
	Required   bool               `json:"required"`
	Instrument string             `json:"instrument,omitempty"`
	ScaleItem  int                `json:"scaleItem,omitempty"`
}

type CatalogGroup struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Questions   []CatalogQuestion `json:"questions"`
}

type CatalogView struct {
	Version  string         `json:"version"`
	Language model.Language `json:"language"`
	Groups   []CatalogGroup `json:"groups"`
}

// CatalogService serves the compiled-in bank. It never reads the database:
// the persisted rows exist for audit and reporting joins, while rendering
// and scoring use the typed catalog directly.
type CatalogService struct {
	Catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{Catalog: cat}
}

// Questions returns the full protocol localized to lang, in order.
func (s *CatalogService) Questions(lang model.Language) *CatalogView {
	if lang != model.LanguageArabic {
		lang = model.LanguageEnglish
	}
	view := &CatalogView{Version: s.Catalog.Version, Language: lang}
	for _, g := range s.Catalog.Groups {
		cg := CatalogGroup{Code: g.Code}
		if lang == model.LanguageArabic {
			cg.Name, cg.Description = g.NameAR, g.DescAR
		} else {
			cg.Name, cg.Description = g.NameEN, g.DescEN
		}
		for _, it := range g.Items {
			q := CatalogQuestion{
				ID:       it.ID,
				Code:     it.Code,
				Type:     it.Type,
				Text:     it.Text(lang),
				Required: it.Required,
			}
			for _, o := range it.Options {
				if lang == model.LanguageArabic {
					q.Options = append(q.Options, o.AR)
				} else {
					q.Options = append(q.Options, o.EN)
				}
			}
			if it.Scale != nil {
				q.Instrument = string(it.Scale.Instrument)
				q.ScaleItem = it.Scale.Item
			}
			cg.Questions = append(cg.Questions, q)
		}
		view.Groups = append(view.Groups, cg)
	}
	return view
}
