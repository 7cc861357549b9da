package cssast

import "strings"

// Print serializes a rule list back to CSS text. There's no printer to
// adapt from the pack here — generating Go constants never needed one —
// so this is a plain, un-pretty stdlib string builder: each rule's
// header, each declaration (terminated by ';') and each closing brace
// go on their own line, indented two spaces per nesting level. It is the mirror image of the parser adapter: just
// enough to round-trip what the dispatcher and rule minifier produce,
// not a general-purpose formatter.
func Print(rules CssRuleList) string {
	var b strings.Builder
	printRules(&b, rules, 0)
	return b.String()
}

func printRules(b *strings.Builder, rules CssRuleList, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range rules {
		switch rule := r.(type) {
		case *StyleRule:
			printStyleRule(b, rule, depth)
		case *MediaRule:
			b.WriteString(indent)
			b.WriteString("@media ")
			b.WriteString(rule.Query)
			b.WriteString(" {\n")
			printRules(b, rule.Rules, depth+1)
			b.WriteString(indent)
			b.WriteString("}\n")
		case *SupportsRule:
			b.WriteString(indent)
			b.WriteString("@supports ")
			b.WriteString(rule.Condition.String())
			b.WriteString(" {\n")
			printRules(b, rule.Rules, depth+1)
			b.WriteString(indent)
			b.WriteString("}\n")
		case *KeyframesRule:
			printKeyframesRule(b, rule, depth)
		case *CustomMediaRule:
			b.WriteString(indent)
			b.WriteString("@custom-media --")
			b.WriteString(rule.Name)
			b.WriteString(" (")
			b.WriteString(rule.Query)
			b.WriteString(");\n")
		case *PropertyAtRule:
			b.WriteString(indent)
			b.WriteString("@property --")
			b.WriteString(rule.Name)
			b.WriteString(" {\n")
			b.WriteString(indent)
			b.WriteString("  syntax: '")
			b.WriteString(rule.Syntax)
			b.WriteString("';\n")
			b.WriteString(indent)
			b.WriteString("  inherits: ")
			b.WriteString(boolString(rule.Inherits))
			b.WriteString(";\n")
			if rule.InitialValue != "" {
				b.WriteString(indent)
				b.WriteString("  initial-value: ")
				b.WriteString(rule.InitialValue)
				b.WriteString(";\n")
			}
			b.WriteString(indent)
			b.WriteString("}\n")
		case *FontFaceRule:
			b.WriteString(indent)
			b.WriteString("@font-face {\n")
			printDeclarationBlock(b, rule.Declarations, depth+1)
			b.WriteString(indent)
			b.WriteString("}\n")
		case *ImportRule:
			b.WriteString(indent)
			b.WriteString("@import ")
			b.WriteString(rule.URL)
			if rule.Media != "" {
				b.WriteString(" ")
				b.WriteString(rule.Media)
			}
			b.WriteString(";\n")
		case *IgnoredRule:
			// nothing to print: the parser had no opinion on this rule
		}
	}
}

func printStyleRule(b *strings.Builder, rule *StyleRule, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(strings.Join(selectorStrings(rule.Selectors), ", "))
	b.WriteString(" {\n")
	printDeclarationBlock(b, rule.Declarations, depth+1)
	printRules(b, rule.Rules, depth+1)
	b.WriteString(indent)
	b.WriteString("}\n")
}

func printKeyframesRule(b *strings.Builder, rule *KeyframesRule, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("@keyframes ")
	b.WriteString(rule.Name)
	b.WriteString(" {\n")
	for _, step := range rule.Keyframes {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(strings.Join(step.Selectors, ", "))
		b.WriteString(" {\n")
		printDeclarationBlock(b, step.Declarations, depth+2)
		b.WriteString(indent)
		b.WriteString("  }\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

func printDeclarationBlock(b *strings.Builder, block DeclarationBlock, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, p := range block.Declarations {
		b.WriteString(indent)
		printDeclaration(b, p, false)
	}
	for _, p := range block.ImportantDeclarations {
		b.WriteString(indent)
		printDeclaration(b, p, true)
	}
}

func printDeclaration(b *strings.Builder, p Property, important bool) {
	name := propertyName(p.ID)
	if name == "" && p.Name != "" {
		name = p.Name
	}
	if name == "" {
		name = "--unknown"
	}
	b.WriteString(name)
	b.WriteString(": ")
	if p.Unparsed {
		b.WriteString(p.Raw)
	} else if p.Value != nil {
		b.WriteString(p.Value.String())
	}
	if important {
		b.WriteString(" !important")
	}
	b.WriteString(";\n")
}

func selectorStrings(sel SelectorList) []string {
	out := make([]string, len(sel))
	for i, s := range sel {
		out[i] = string(s)
	}
	return out
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
