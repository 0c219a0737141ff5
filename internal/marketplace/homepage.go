package marketplace

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	recpb "BookMarket/api/recommendations/v1"
)

//go:embed templates/*.html
var templateFS embed.FS

var homepageTmpl = template.Must(template.ParseFS(templateFS, "templates/homepage.html"))

const defaultRequestTimeout = 3 * time.Second

// Server renders the storefront. Every homepage view asks the
// recommendations service for the configured user, category and size.
type Server struct {
	Recs recpb.RecommendationsClient
	Log  *zap.Logger

	UserID     int64
	Category   recpb.BookCategory
	MaxResults int32
	Timeout    time.Duration
}

type homepageData struct {
	Category        string
	Recommendations []*recpb.BookRecommendation
	Unavailable     bool
}

func (s *Server) recommend(ctx context.Context) ([]*recpb.BookRecommendation, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.Recs.Recommend(ctx, &recpb.RecommendationRequest{
		UserId:     s.UserID,
		Category:   s.Category,
		MaxResults: s.MaxResults,
	})
	if err != nil {
		return nil, err
	}
	return resp.GetRecommendations(), nil
}

// Homepage never fails because of the recommendations service: on any RPC
// error the page is rendered without the list.
func (s *Server) Homepage(w http.ResponseWriter, r *http.Request) {
	data := homepageData{Category: s.Category.String()}

	recs, err := s.recommend(r.Context())
	if err != nil {
		data.Unavailable = true
		s.log().Warn("recommendations unavailable",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("code", status.Code(err).String()),
			zap.Error(err),
		)
	} else {
		data.Recommendations = recs
	}

	var buf bytes.Buffer
	if err := homepageTmpl.Execute(&buf, data); err != nil {
		s.log().Error("render homepage", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
