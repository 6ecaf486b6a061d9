package algolia

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

type multiQueryRequest struct {
	Requests []indexQuery `json:"requests"`
}

type indexQuery struct {
	IndexName string `json:"indexName"`
	Params    string `json:"params"`
}

type multiQueryResponse struct {
	Results []wireResult `json:"results"`
}

type wireResult struct {
	Hits             []wireHit `json:"hits"`
	NbHits           int       `json:"nbHits"`
	Page             int       `json:"page"`
	NbPages          int       `json:"nbPages"`
	HitsPerPage      int       `json:"hitsPerPage"`
	ProcessingTimeMS int       `json:"processingTimeMS"`
	ExhaustiveNbHits bool      `json:"exhaustiveNbHits"`
	Query            string    `json:"query"`
	Params           string    `json:"params"`
}

type wireHit struct {
	ObjectID  string                     `json:"objectID"`
	URL       string                     `json:"url"`
	Title     string                     `json:"title"`
	Content   string                     `json:"content"`
	Type      string                     `json:"type"`
	Hierarchy wireHierarchy              `json:"hierarchy"`
	Highlight map[string]json.RawMessage `json:"_highlightResult"`
}

type wireHierarchy struct {
	Lvl0 string `json:"lvl0"`
	Lvl1 string `json:"lvl1"`
	Lvl2 string `json:"lvl2"`
	Lvl3 string `json:"lvl3"`
}

type highlightValue struct {
	Value string `json:"value"`
}

type errorBody struct {
	Message string `json:"message"`
}

// encodeParams renders request params in the provider's query-string form.
// An absent query is omitted entirely.
func encodeParams(p domain.SearchParams) string {
	values := url.Values{}
	if p.Query != nil {
		values.Set("query", *p.Query)
	}
	if p.HitsPerPage > 0 {
		values.Set("hitsPerPage", strconv.Itoa(p.HitsPerPage))
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	return values.Encode()
}

func toRequest(requests []domain.SearchRequest) multiQueryRequest {
	body := multiQueryRequest{Requests: make([]indexQuery, 0, len(requests))}
	for _, r := range requests {
		body.Requests = append(body.Requests, indexQuery{
			IndexName: r.IndexName,
			Params:    encodeParams(r.Params),
		})
	}
	return body
}

func (r *wireResult) toDomain() domain.SearchResult {
	hits := make([]domain.Hit, 0, len(r.Hits))
	for i := range r.Hits {
		hits = append(hits, r.Hits[i].toDomain())
	}
	return domain.SearchResult{
		Hits:             hits,
		NbHits:           r.NbHits,
		Page:             r.Page,
		NbPages:          r.NbPages,
		HitsPerPage:      r.HitsPerPage,
		ProcessingTimeMS: r.ProcessingTimeMS,
		ExhaustiveNbHits: r.ExhaustiveNbHits,
		Query:            r.Query,
		Params:           r.Params,
	}
}

func (h *wireHit) toDomain() domain.Hit {
	return domain.Hit{
		ObjectID: h.ObjectID,
		URL:      h.URL,
		Title:    h.Title,
		Content:  h.Content,
		Type:     h.Type,
		Hierarchy: domain.Hierarchy{
			Lvl0: h.Hierarchy.Lvl0,
			Lvl1: h.Hierarchy.Lvl1,
			Lvl2: h.Hierarchy.Lvl2,
			Lvl3: h.Hierarchy.Lvl3,
		},
		Highlights: flattenHighlights(h.Highlight),
	}
}

// flattenHighlights turns the nested _highlightResult object into
// attribute-path keys such as "title" and "hierarchy.lvl1".
// Malformed entries are skipped.
func flattenHighlights(raw map[string]json.RawMessage) map[string]string {
	out := make(map[string]string)
	for attr, msg := range raw {
		if attr == "hierarchy" {
			var levels map[string]highlightValue
			if err := json.Unmarshal(msg, &levels); err != nil {
				continue
			}
			for lvl, hv := range levels {
				out["hierarchy."+lvl] = hv.Value
			}
			continue
		}
		var hv highlightValue
		if err := json.Unmarshal(msg, &hv); err != nil {
			continue
		}
		out[attr] = hv.Value
	}
	return out
}
