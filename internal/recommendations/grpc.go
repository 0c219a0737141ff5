package recommendations

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/internal/catalog"
	"BookMarket/pkg/kit"
)

type Recommender interface {
	Recommend(ctx context.Context, req Request) ([]catalog.Recommendation, error)
}

// Server adapts a Recommender to the gRPC contract and maps its errors to
// status codes: ErrCategoryNotFound → NOT_FOUND, anything else → INTERNAL.
type Server struct {
	recpb.UnimplementedRecommendationsServer

	Recs Recommender
	Log  *zap.Logger
}

func (s *Server) Recommend(ctx context.Context, req *recpb.RecommendationRequest) (*recpb.RecommendationResponse, error) {
	recs, err := s.Recs.Recommend(ctx, Request{
		UserID:     req.GetUserId(),
		Category:   catalog.Category(req.GetCategory()),
		MaxResults: int(req.GetMaxResults()),
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, status.Error(codes.NotFound, "Category not found")
		}
		if s.Log != nil {
			s.Log.Error("recommend failed",
				zap.Error(err),
				zap.String("request_id", kit.RPCRequestID(ctx)),
				zap.Int64("user_id", req.GetUserId()),
				zap.Stringer("category", req.GetCategory()),
			)
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := &recpb.RecommendationResponse{
		Recommendations: make([]*recpb.BookRecommendation, 0, len(recs)),
	}
	for _, r := range recs {
		out.Recommendations = append(out.Recommendations, &recpb.BookRecommendation{Id: r.ID, Title: r.Title})
	}
	return out, nil
}
