package shop

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ClothingShop/internal/catalog"
	"ClothingShop/internal/nav"
	"ClothingShop/pkg/kit"
)

const maxNavigateBody = 4 << 10

type Server struct {
	Resolver *catalog.Resolver
	Sessions *nav.MemStore
	Log      *zap.Logger

	metrics *shopMetrics
}

type navigateReq struct {
	Route string `json:"route"`
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Resolver == nil || s.Resolver.Store.Len() == 0 {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog empty", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.homeView(0))
}

func (s *Server) productDetail(w http.ResponseWriter, r *http.Request) {
	d, ok := s.detailView(chi.URLParam(r, "productId")).Get()
	if !ok {
		kit.WriteEmpty(w)
		return
	}
	kit.WriteJSON(w, http.StatusOK, d)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Create()
	if err != nil {
		s.writeNavError(w, r, err)
		return
	}

	s.Log.Debug("session created", zap.String("session_id", sess.ID))
	kit.WriteJSON(w, http.StatusCreated, s.screen(sess))
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		s.writeNavError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.screen(sess))
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")
	if !s.Sessions.Delete(id) {
		s.writeNavError(w, r, nav.ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeNavigateRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	route, err := nav.ParseRoute(req.Route)
	if err != nil {
		s.writeNavError(w, r, err)
		return
	}

	s.update(w, r, func(n *nav.Navigator) error { return n.Navigate(route) })
}

// selectProduct is a tap on a list row. Rows always carry a numeric id, so
// only the decimal form is accepted here; whether it exists is decided when
// the detail screen renders.
func (s *Server) selectProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")
	id, ok := catalog.ParseID(raw).Get()
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid product id", map[string]any{"product_id": raw})
		return
	}

	route := nav.ProductDetailRoute(id)
	s.update(w, r, func(n *nav.Navigator) error { return n.Navigate(route) })
}

func (s *Server) back(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(n *nav.Navigator) error {
		n.Back()
		return nil
	})
}

func (s *Server) selectTab(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeNavError(w, r, nav.ErrUnknownTab)
		return
	}

	s.update(w, r, func(n *nav.Navigator) error { return n.SelectTab(idx) })
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(*nav.Navigator) error) {
	sess, err := s.Sessions.Update(chi.URLParam(r, "sessionId"), fn)
	if err != nil {
		s.writeNavError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.screen(sess))
}

func decodeNavigateRequest(w http.ResponseWriter, r *http.Request) (navigateReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxNavigateBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req navigateReq
	if err := dec.Decode(&req); err != nil {
		return navigateReq{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return navigateReq{}, errors.New("extra data after json object")
	}

	return req, nil
}

func (s *Server) writeNavError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, nav.ErrSessionNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "session not found", nil)
	case errors.Is(err, nav.ErrUnknownRoute):
		kit.WriteError(w, r, http.StatusBadRequest, "unknown route", map[string]any{"cause": err.Error()})
	case errors.Is(err, nav.ErrInvalidTransition):
		kit.WriteError(w, r, http.StatusConflict, "invalid transition", map[string]any{"cause": err.Error()})
	case errors.Is(err, nav.ErrUnknownTab):
		kit.WriteError(w, r, http.StatusBadRequest, "unknown tab", map[string]any{"tabs": nav.Tabs})
	case errors.Is(err, nav.ErrTooManySessions):
		s.Log.Warn("session capacity reached")
		kit.WriteError(w, r, http.StatusServiceUnavailable, "too many sessions", nil)
	default:
		s.Log.Error("navigation failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
