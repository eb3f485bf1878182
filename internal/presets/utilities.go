package presets

import (
	"fmt"

	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/order"
	"wispcss/internal/theme"
	"wispcss/internal/value"
)

// DefaultUtilities installs the static display/position/flex utilities
// and the dynamic spacing/sizing/color/typography/transform utilities.
func DefaultUtilities(s *design.System) {
	registerDisplay(s)
	registerPosition(s)
	registerFlexBox(s)
	registerSpacing(s)
	registerSizing(s)
	registerColors(s)
	registerBorderRadius(s)
	registerTypography(s)
	registerOpacity(s)
	registerTransform(s)
}

func staticDecl(s *design.System, key string, ordering order.Key, decls ...css.Decl) {
	u := design.Static(key, decls)
	u.Ordering = ordering
	s.AddUtility(u)
}

func registerDisplay(s *design.System) {
	displays := map[string]string{
		"block": "block", "inline-block": "inline-block", "inline": "inline",
		"flex": "flex", "inline-flex": "inline-flex", "grid": "grid",
		"inline-grid": "inline-grid", "contents": "contents", "hidden": "none",
		"flow-root": "flow-root", "table": "table",
	}
	for key, v := range displays {
		staticDecl(s, key, order.Display, css.Decl{Name: "display", Value: v})
	}
}

func registerPosition(s *design.System) {
	for _, key := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		staticDecl(s, key, order.Position, css.Decl{Name: "position", Value: key})
	}
}

func registerFlexBox(s *design.System) {
	staticDecl(s, "flex-row", order.FlexBox, css.Decl{Name: "flex-direction", Value: "row"})
	staticDecl(s, "flex-col", order.FlexBox, css.Decl{Name: "flex-direction", Value: "column"})
	staticDecl(s, "flex-wrap", order.FlexBox, css.Decl{Name: "flex-wrap", Value: "wrap"})
	staticDecl(s, "flex-nowrap", order.FlexBox, css.Decl{Name: "flex-wrap", Value: "nowrap"})

	items := map[string]string{"start": "flex-start", "center": "center", "end": "flex-end", "stretch": "stretch", "baseline": "baseline"}
	for k, v := range items {
		staticDecl(s, "items-"+k, order.FlexBox, css.Decl{Name: "align-items", Value: v})
	}
	justify := map[string]string{"start": "flex-start", "center": "center", "end": "flex-end", "between": "space-between", "around": "space-around", "evenly": "space-evenly"}
	for k, v := range justify {
		staticDecl(s, "justify-"+k, order.FlexBox, css.Decl{Name: "justify-content", Value: v})
	}
}

// spacingDef is the shared value definition for utilities drawn from the
// spacing scale, accepting arbitrary lengths/percentages too.
func spacingDef(s *design.System) value.Def {
	return value.Def{AllowedValues: s.Theme.Map("spacing"), Validator: value.DataTypeValidator{Type: value.TypeLengthPercentage}}
}

func registerSpacing(s *design.System) {
	def := spacingDef(s)
	registerBoxAxis(s, "m", order.Margin, order.MarginAxis, order.MarginSide, "margin", def, true)
	registerBoxAxis(s, "p", order.Padding, order.PaddingAxis, order.PaddingSide, "padding", def, false)

	s.AddUtility(&design.Utility{
		Key: "gap", ValueDef: def, Ordering: order.FlexBox,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "gap", Value: v.Plain}}}, true
		},
	})
}

// registerBoxAxis registers the m/p family: bare, -x/-y axis, and
// -t/-r/-b/-l side variants, all sharing one ValueDef and negative
// support where applicable.
func registerBoxAxis(s *design.System, prefix string, baseKey, axisKey, sideKey order.Key, prop string, def value.Def, negative bool) {
	s.AddUtility(&design.Utility{
		Key: prefix, ValueDef: def, SupportsNegative: negative, Ordering: baseKey,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: prop, Value: v.Plain}}}, true
		},
	})
	axes := map[string][2]string{"x": {prop + "-left", prop + "-right"}, "y": {prop + "-top", prop + "-bottom"}}
	for axis, props := range axes {
		props := props
		s.AddUtility(&design.Utility{
			Key: prefix + axis, ValueDef: def, SupportsNegative: negative, Ordering: axisKey,
			Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: props[0], Value: v.Plain}, {Name: props[1], Value: v.Plain}}}, true
			},
		})
	}
	sideProp := map[string]string{"t": prop + "-top", "r": prop + "-right", "b": prop + "-bottom", "l": prop + "-left"}
	for side, p := range sideProp {
		p := p
		s.AddUtility(&design.Utility{
			Key: prefix + side, ValueDef: def, SupportsNegative: negative, Ordering: sideKey,
			Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: p, Value: v.Plain}}}, true
			},
		})
	}
}

func registerSizing(s *design.System) {
	sizing := s.Theme.Map("sizing")
	for _, k := range s.Theme.Map("spacing").Keys() {
		v, _ := s.Theme.Map("spacing").Get(k)
		sizing.Set(k, v)
	}
	sizing.Set("auto", theme.Plain("auto"))
	sizing.Set("full", theme.Plain("100%"))
	sizing.Set("screen", theme.Plain("100vh"))
	sizing.Set("svh", theme.Plain("100svh"))
	sizing.Set("min", theme.Plain("min-content"))
	sizing.Set("max", theme.Plain("max-content"))
	sizing.Set("fit", theme.Plain("fit-content"))

	def := value.Def{AllowedValues: sizing, Validator: value.DataTypeValidator{Type: value.TypeLengthPercentage}}
	for key, prop := range map[string]string{"w": "width", "h": "height", "min-w": "min-width", "min-h": "min-height", "max-w": "max-width", "max-h": "max-height"} {
		prop := prop
		s.AddUtility(&design.Utility{
			Key: key, ValueDef: def, SupportsFraction: true, Ordering: order.Sizing,
			Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: prop, Value: v.Plain}}}, true
			},
		})
	}
}

// registerColors wires bg-/text-/border-/fill-/stroke- against the color
// theme map, supporting the "<color>/<opacity>" modifier form via
// design.ColorMix.
func registerColors(s *design.System) {
	def := value.Def{AllowedValues: s.Theme.Map("colors"), Validator: value.DataTypeValidator{Type: value.TypeColor}}
	modDef := value.Def{AllowedValues: s.Theme.Map("opacity"), Validator: value.DataTypeValidator{Type: value.TypeNumber}}

	families := []struct {
		key, prop string
		ordering  order.Key
	}{
		{"bg", "background-color", order.BackgroundColor},
		{"text", "color", order.TextColor},
		{"border", "border-color", order.BorderWidth},
		{"fill", "fill", order.TextColor},
		{"stroke", "stroke", order.TextColor},
		{"decoration", "text-decoration-color", order.TextColor},
	}
	for _, f := range families {
		f := f
		s.AddUtility(&design.Utility{
			Key: f.key, ValueDef: def, ModifierDef: &modDef, Ordering: f.ordering,
			Handler: func(meta design.MetaData, v theme.Value) (css.Rule, bool) {
				val := v.Plain
				if meta.Modifier != "" {
					val = design.ColorMix(val, meta.Modifier)
				}
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: f.prop, Value: val}}}, true
			},
		})
	}
}

func registerBorderRadius(s *design.System) {
	def := value.Def{AllowedValues: s.Theme.Map("radius"), Validator: value.DataTypeValidator{Type: value.TypeLength}}
	s.AddUtility(&design.Utility{
		Key: "rounded", ValueDef: def, Ordering: order.BorderRadius,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "border-radius", Value: v.Plain}}}, true
		},
	})
	for side, prop := range map[string]string{
		"t": "border-top-left-radius, border-top-right-radius",
		"b": "border-bottom-left-radius, border-bottom-right-radius",
		"l": "border-top-left-radius, border-bottom-left-radius",
		"r": "border-top-right-radius, border-bottom-right-radius",
	} {
		props := splitCSV(prop)
		s.AddUtility(&design.Utility{
			Key: "rounded-" + side, ValueDef: def, Ordering: order.BorderRadius,
			Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
				decls := make([]css.Decl, len(props))
				for i, p := range props {
					decls[i] = css.Decl{Name: p, Value: v.Plain}
				}
				return css.Rule{Selector: "&", Decls: decls}, true
			},
		})
	}
}

func splitCSV(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ',' {
			out = append(out, trimSpace(cur))
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, trimSpace(cur))
	}
	return out
}

func trimSpace(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func registerTypography(s *design.System) {
	def := value.Def{AllowedValues: s.Theme.Map("fontSize"), Validator: value.DataTypeValidator{Type: value.TypeLengthPercentage}}
	s.AddUtility(&design.Utility{
		Key: "text", ValueDef: def, Ordering: order.FontSize,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			if v.Kind != theme.KindFontSize {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "font-size", Value: v.Plain}}}, true
			}
			decls := []css.Decl{{Name: "font-size", Value: v.FontSize.Size}}
			if v.FontSize.LineHeight != "" {
				decls = append(decls, css.Decl{Name: "line-height", Value: v.FontSize.LineHeight})
			}
			return css.Rule{Selector: "&", Decls: decls}, true
		},
	})

	familyDef := value.Def{AllowedValues: s.Theme.Map("fontFamily"), Validator: value.DataTypeValidator{Type: value.TypeIdent}}
	s.AddUtility(&design.Utility{
		Key: "font", ValueDef: familyDef, Ordering: order.FontSize,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			if v.Kind != theme.KindFontFamily {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "font-family", Value: v.Plain}}}, true
			}
			stack := v.FontFamily.Primary
			for _, fb := range v.FontFamily.Fallbacks {
				stack += ", " + fb
			}
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "font-family", Value: stack}}}, true
		},
	})

	weights := map[string]string{
		"thin": "100", "extralight": "200", "light": "300", "normal": "400",
		"medium": "500", "semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
	}
	for k, v := range weights {
		staticDecl(s, "font-"+k, order.FontSize, css.Decl{Name: "font-weight", Value: v})
	}

	align := map[string]string{"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end"}
	for k, v := range align {
		staticDecl(s, "text-"+k, order.FontSize, css.Decl{Name: "text-align", Value: v})
	}
}

func registerOpacity(s *design.System) {
	def := value.Def{AllowedValues: s.Theme.Map("opacity"), Validator: value.DataTypeValidator{Type: value.TypeNumber}}
	s.AddUtility(&design.Utility{
		Key: "opacity", ValueDef: def, Ordering: order.Opacity,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			n := v.Plain
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "opacity", Value: fmt.Sprintf("calc(%s / 100)", n)}}}, true
		},
	})
}

// registerTransform registers the rotate/scale/translate family as
// members of design.GroupTransform, each contributing a custom property
// consumed by the shared `transform` declaration synthesized once per
// batch rather than emitting its own `transform:` line.
func registerTransform(s *design.System) {
	degDef := value.Def{AllowedValues: s.Theme.Map("rotate"), Validator: value.DataTypeValidator{Type: value.TypeAngle}}
	s.AddUtility(&design.Utility{
		Key: "rotate", ValueDef: degDef, SupportsNegative: true, Ordering: order.Transform, Group: design.GroupTransform,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			return css.Rule{Selector: "&", Decls: []css.Decl{{Name: "--tw-rotate-z", Value: v.Plain}}}, true
		},
	})
	scaleDef := value.Def{AllowedValues: s.Theme.Map("scale"), Validator: value.DataTypeValidator{Type: value.TypeNumber}}
	s.AddUtility(&design.Utility{
		Key: "scale", ValueDef: scaleDef, Ordering: order.Transform, Group: design.GroupTransform,
		Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
			n := fmt.Sprintf("calc(%s / 100)", v.Plain)
			return css.Rule{Selector: "&", Decls: []css.Decl{
				{Name: "--tw-scale-x", Value: n}, {Name: "--tw-scale-y", Value: n},
			}}, true
		},
	})
	spacing := spacingDef(s)
	for axis, prop := range map[string]string{"x": "--tw-translate-x", "y": "--tw-translate-y"} {
		prop := prop
		s.AddUtility(&design.Utility{
			Key: "translate-" + axis, ValueDef: spacing, SupportsNegative: true, Ordering: order.Transform, Group: design.GroupTransform,
			Handler: func(_ design.MetaData, v theme.Value) (css.Rule, bool) {
				return css.Rule{Selector: "&", Decls: []css.Decl{{Name: prop, Value: v.Plain}}}, true
			},
		})
	}
}
