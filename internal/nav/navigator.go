package nav

import (
	"errors"
	"fmt"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tabs of the bottom navigation bar. Selecting one only changes which is
// highlighted.
var Tabs = []string{"Home", "Cart", "Profile"}

// Navigator holds one client's back stack. The stack is never deeper than
// home plus one detail screen.
type Navigator struct {
	stack       []Route
	selectedTab int
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{HomeRoute()}}
}

func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) CanGoBack() bool {
	return len(n.stack) > 1
}

func (n *Navigator) Navigate(to Route) error {
	cur := n.Current()

	switch to.Name {
	case Home:
		// popUpTo home
		n.stack = n.stack[:1]
		return nil
	case ProductDetail:
		if cur.Name != Home {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur, to)
		}
		n.stack = append(n.stack, to)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRoute, to.Name)
	}
}

// Back pops one screen. On home there is nothing to pop and it reports false.
func (n *Navigator) Back() bool {
	if !n.CanGoBack() {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

func (n *Navigator) SelectedTab() int { return n.selectedTab }

func (n *Navigator) SelectTab(i int) error {
	if i < 0 || i >= len(Tabs) {
		return fmt.Errorf("%w: %d", ErrUnknownTab, i)
	}
	n.selectedTab = i
	return nil
}

// clone copies the navigator so a snapshot can leave the store's lock.
func (n *Navigator) clone() *Navigator {
	out := &Navigator{selectedTab: n.selectedTab, stack: make([]Route, len(n.stack))}
	copy(out.stack, n.stack)
	return out
}
