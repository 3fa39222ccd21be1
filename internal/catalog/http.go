package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ClothingShop/pkg/kit"
)

// Server exposes the catalog as plain data. Screen composition lives in the
// shop package; both resolve through the same Resolver.
type Server struct {
	Resolver *Resolver
	Log      *zap.Logger

	// OnResolve, when set, is told whether each detail lookup found a product.
	OnResolve func(found bool)
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/{productId}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Resolver.Store.ListAll())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")

	p, ok := s.Resolver.ResolveRaw(raw).Get()
	if s.OnResolve != nil {
		s.OnResolve(ok)
	}
	if !ok {
		if s.Log != nil {
			s.Log.Debug("product not resolved", zap.String("product_id", raw))
		}
		kit.WriteEmpty(w)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
