package shop

import (
	"ClothingShop/internal/catalog"
	"ClothingShop/internal/nav"
	"ClothingShop/pkg/opt"
)

const homeTitle = "Shopping"

type TabView struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type HomeView struct {
	Title    string            `json:"title"`
	Tabs     []TabView         `json:"tabs"`
	Products []catalog.Summary `json:"products"`
}

type DetailView struct {
	Title   string          `json:"title"`
	Product catalog.Product `json:"product"`
}

// ScreenView is what one navigation session currently shows. On a detail
// route whose product does not resolve, Detail is omitted and nothing is
// rendered.
type ScreenView struct {
	SessionID   string      `json:"session_id"`
	Route       string      `json:"route"`
	CanGoBack   bool        `json:"can_go_back"`
	SelectedTab int         `json:"selected_tab"`
	Home        *HomeView   `json:"home,omitempty"`
	Detail      *DetailView `json:"detail,omitempty"`
}

func (s *Server) homeView(selectedTab int) HomeView {
	tabs := make([]TabView, len(nav.Tabs))
	for i, label := range nav.Tabs {
		tabs[i] = TabView{Index: i, Label: label, Selected: i == selectedTab}
	}
	return HomeView{
		Title:    homeTitle,
		Tabs:     tabs,
		Products: s.Resolver.Store.Summaries(),
	}
}

func (s *Server) detailView(rawID string) opt.Option[DetailView] {
	p := s.Resolver.ResolveRaw(rawID)
	s.metrics.observeResolve(p.IsSome())

	return opt.Map(p, func(p catalog.Product) DetailView {
		return DetailView{Title: p.Name, Product: p}
	})
}

func (s *Server) screen(sess nav.Session) ScreenView {
	cur := sess.Nav.Current()
	v := ScreenView{
		SessionID:   sess.ID,
		Route:       cur.Path(),
		CanGoBack:   sess.Nav.CanGoBack(),
		SelectedTab: sess.Nav.SelectedTab(),
	}

	switch cur.Name {
	case nav.Home:
		h := s.homeView(v.SelectedTab)
		v.Home = &h
	case nav.ProductDetail:
		if d, ok := s.detailView(cur.ProductID).Get(); ok {
			v.Detail = &d
		}
	}
	return v
}
