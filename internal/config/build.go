package config

import (
	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/order"
	"wispcss/internal/presets"
	"wispcss/internal/theme"
	"wispcss/internal/value"
)

// Build applies the default preset to a fresh design.System, layers the
// config's theme overrides and dark-mode strategy on top, and finally
// registers the config's own utilities/static-utilities — run last so a
// project's `[[utilities]]` can shadow a preset utility of the same key.
func Build(cfg *Config) *design.System {
	s := design.NewSystem()
	presets.Default(s)

	s.DarkMode = cfg.DarkMode

	override := theme.Override{Extend: make(map[string]*theme.Map), Replace: make(map[string]*theme.Map)}
	for name, entries := range cfg.Theme.Extend {
		m := theme.NewMap()
		for k, v := range entries {
			m.Set(k, theme.Plain(v))
		}
		override.Extend[name] = m
	}
	for name, entries := range cfg.Theme.Maps {
		m := theme.NewMap()
		for k, v := range entries {
			m.Set(k, theme.Plain(v))
		}
		override.Replace[name] = m
	}
	s.Theme.Merge(override)

	for _, ub := range cfg.Utilities {
		s.AddUtility(buildUtility(s, ub))
	}
	for _, sb := range cfg.StaticUtilities {
		s.AddStatic(sb.Key, buildStatic(sb))
	}

	return s
}

// buildUtility turns one config UtilityBuilder into a design.Utility. The
// handler closure holds no theme snapshot of its own — it reads s.Theme
// only to resolve the value/modifier Defs once at registration time, and
// otherwise just evaluates the already-resolved MetaData/theme.Value it's
// called with against the CSS template map.
func buildUtility(s *design.System, ub UtilityBuilder) *design.Utility {
	valueDef := value.Def{}
	if ub.Theme != "" {
		valueDef.AllowedValues = s.Theme.Map(ub.Theme)
	}
	if ub.Type != "" {
		valueDef.Validator = value.DataTypeValidator{Type: parseDataType(ub.Type)}
	}

	// A named modifier (the "/50" in "bg-blue-500/50") is always looked up
	// against the shared "opacity" theme map, the same convention
	// registerColors uses for its own modifier handling — config utilities
	// don't get a separate modifier theme map of their own.
	var modifierDef *value.Def
	if ub.Modifier != "" {
		modifierDef = &value.Def{
			AllowedValues: s.Theme.Map("opacity"),
			Validator:     value.DataTypeValidator{Type: parseDataType(ub.Modifier)},
		}
	}

	decls := ub.CSS
	extraDecls := ub.ExtraCSS
	selector := ub.Selector
	if selector == "" {
		selector = "&"
	}

	u := &design.Utility{
		Key:              ub.Key,
		ValueDef:         valueDef,
		ModifierDef:      modifierDef,
		SupportsNegative: ub.Negative,
		SupportsFraction: ub.Fraction,
		Ordering:         parseOrderKey(ub.Order),
		Group:            parseGroup(ub.Group),
		Handler: func(meta design.MetaData, v theme.Value) (css.Rule, bool) {
			val := themeValueString(v)
			rule := css.Rule{Selector: "&", Decls: make([]css.Decl, 0, len(decls)+len(extraDecls))}
			for name, tmpl := range decls {
				rule.Decls = append(rule.Decls, css.Decl{Name: name, Value: evalTemplate(tmpl, val, meta.Modifier)})
			}
			for name, tmpl := range extraDecls {
				rule.Decls = append(rule.Decls, css.Decl{Name: name, Value: evalTemplate(tmpl, val, meta.Modifier)})
			}
			return rule, true
		},
	}
	if selector != "&" {
		u.Selector = selector
	}
	return u
}

// buildStatic turns one config StaticBuilder into a bare *design.Utility;
// AddStatic keys it under sb.Key. Selector defaults to "&" (the unified
// shape for the spec's `declMap | [selector, declMap]` sum type).
func buildStatic(sb StaticBuilder) *design.Utility {
	decls := make([]css.Decl, 0, len(sb.Decls))
	for name, v := range sb.Decls {
		decls = append(decls, css.Decl{Name: name, Value: v})
	}
	u := design.Static(sb.Key, decls)
	if sb.Selector != "" && sb.Selector != "&" {
		u.Selector = sb.Selector
	}
	return u
}

// themeValueString stringifies a resolved theme.Value for template
// substitution, mirroring the engine's own handling of the font-size
// special case.
func themeValueString(v theme.Value) string {
	switch v.Kind {
	case theme.KindFontSize:
		return v.FontSize.Size
	default:
		return v.Plain
	}
}

var orderKeyByName = map[string]order.Key{
	"disorder":          order.Disorder,
	"display":           order.Display,
	"position":          order.Position,
	"inset":             order.Inset,
	"inset-axis":        order.InsetAxis,
	"inset-side":        order.InsetSide,
	"position-side":     order.PositionSide,
	"flex-box":          order.FlexBox,
	"sizing":            order.Sizing,
	"margin":            order.Margin,
	"margin-axis":       order.MarginAxis,
	"margin-side":       order.MarginSide,
	"padding":           order.Padding,
	"padding-axis":      order.PaddingAxis,
	"padding-side":      order.PaddingSide,
	"border-width":      order.BorderWidth,
	"border-width-axis": order.BorderWidthAxis,
	"border-width-side": order.BorderWidthSide,
	"border-radius":     order.BorderRadius,
	"background-color":  order.BackgroundColor,
	"gradient-stops":    order.GradientStops,
	"text-color":        order.TextColor,
	"font-size":         order.FontSize,
	"opacity":           order.Opacity,
	"transform":         order.Transform,
	"filter":            order.Filter,
	"backdrop-filter":   order.BackdropFilter,
}

func parseOrderKey(name string) order.Key {
	if k, ok := orderKeyByName[name]; ok {
		return k
	}
	return order.Disorder
}

var groupByName = map[string]design.Group{
	"transform":       design.GroupTransform,
	"filter":          design.GroupFilter,
	"backdrop-filter": design.GroupBackdropFilter,
}

func parseGroup(name string) design.Group {
	return groupByName[name]
}

var dataTypeByName = map[string]value.DataType{
	"color":             value.TypeColor,
	"length":            value.TypeLength,
	"length-percentage": value.TypeLengthPercentage,
	"percentage":        value.TypePercentage,
	"number":            value.TypeNumber,
	"ident":             value.TypeIdent,
	"image":             value.TypeImage,
	"time":              value.TypeTime,
	"angle":             value.TypeAngle,
	"any":               value.TypeAny,
}

func parseDataType(name string) value.DataType {
	if t, ok := dataTypeByName[name]; ok {
		return t
	}
	return value.TypeAny
}
