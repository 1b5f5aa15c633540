package serviceImp

import (
	"math"
	"sort"
	"strings"

	"lavoura/entities"
	"lavoura/pkg/kb/embedder"
	"lavoura/pkg/kb/repository"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertArticle(title, tags, text, sourceURL string) (*entities.Article, int, error) {
	a := &entities.Article{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateArticle(a); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return a, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(chs)
		if err != nil {
			// degrade gracefully: keep chunks with empty embeddings,
			// Search falls back to keyword matching
			embs = nil
		}
	}

	rows := make([]entities.ArticleChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.ArticleChunk{
			ArticleID: a.ArticleID,
			Ord:       i,
			Text:      chs[i],
			Embedding: embBytes,
		}
	}

	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return a, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.ArticleChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.ArticleChunk
		sc float64
	}
	scoredList := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			chVec := embedder.BytesToFloats(ch.Embedding)
			if len(chVec) == 0 || len(chVec) != len(qvec) {
				continue
			}
			if sc := cosine(qvec, chVec); sc > 0 {
				scoredList = append(scoredList, scored{ch: ch, sc: sc})
			}
		}
	} else {
		// keyword fallback: score by how many query terms the chunk contains
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			score := 0.0
			for _, t := range terms {
				if strings.Contains(low, t) {
					score++
				}
			}
			if score > 0 {
				scoredList = append(scoredList, scored{ch: ch, sc: score})
			}
		}
	}

	if len(scoredList) == 0 {
		return nil, nil
	}
	sort.SliceStable(scoredList, func(i, j int) bool { return scoredList[i].sc > scoredList[j].sc })

	if k > len(scoredList) {
		k = len(scoredList)
	}
	out := make([]entities.ArticleChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, scoredList[i].ch)
	}
	return out, nil
}

// Articles lists the ingested references, newest first.
func (s *Svc) Articles() ([]entities.Article, error) {
	return s.r.ListArticles()
}

func (s *Svc) ArticlesMeta(ids []uint) (map[uint]entities.Article, error) {
	return s.r.ArticlesByIDs(ids)
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i] * b[i])
		na += float64(a[i] * a[i])
		nb += float64(b[i] * b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
