package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if icon == nil {
		return nil
	}
	if widget, ok := iconCache[&icon[0]]; ok {
		return widget
	}
	widget, err := widget.NewIcon(icon)
	if err != nil {
		panic(err)
	}
	iconCache[&icon[0]] = widget
	return widget
}

func IconButton(th *material.Theme, w *widget.Clickable, icon []byte, enabled bool, description string) material.IconButtonStyle {
	ret := material.IconButton(th, w, widgetForIcon(icon), description)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	if enabled {
		ret.Color = primaryColor
	} else {
		ret.Color = disabledTextColor
	}
	return ret
}

// ToggleIconButton is an IconButton that is highlighted when active.
func ToggleIconButton(th *material.Theme, w *widget.Clickable, icon []byte, active, enabled bool, description string) material.IconButtonStyle {
	ret := IconButton(th, w, icon, enabled, description)
	if active {
		ret.Background = primaryColor
		ret.Color = black
	}
	return ret
}
