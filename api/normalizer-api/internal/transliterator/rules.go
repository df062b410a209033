// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_transliterator

import (
	"github.com/dlclark/regexp2"
)

// rule rewrites every match of pattern with replacement. Rule tables are
// applied top to bottom, each rule over the output of the previous one.
type rule struct {
	pattern     *regexp2.Regexp
	replacement string
}

type ruleSpec struct {
	pattern     string
	replacement string
}

func compileRules(specs []ruleSpec) []rule {
	rules := make([]rule, len(specs))
	for i, s := range specs {
		rules[i] = rule{
			pattern:     regexp2.MustCompile(s.pattern, regexp2.None),
			replacement: s.replacement,
		}
	}
	return rules
}

func applyRules(w string, rules []rule) string {
	for _, r := range rules {
		out, err := r.pattern.Replace(w, r.replacement, -1, -1)
		if err != nil {
			continue
		}
		w = out
	}
	return w
}

// =============================================================================
// High priority rules: suffixes, vowel groups, initial clusters, digraphs
// =============================================================================

var highPriorityRules = compileRules([]ruleSpec{
	{`tion$`, "ân"},
	{`sion$`, "ân"},
	{`age$`, "ây"},
	{`ing$`, "ing"},
	{`ture$`, "chờ"},
	{`cial$`, "xô"},
	{`tial$`, "xô"},

	{`aught`, "ót"},
	{`ought`, "ót"},
	{`ound`, "ao"},
	{`ight`, "ai"},
	{`eigh`, "ây"},
	{`ough`, "ao"},

	{`\bst(?!r)`, "t"},
	{`\bstr`, "tr"},
	{`\bsch`, "c"},
	{`\bsc(?=h)`, "c"},
	{`\bsc|\bsk`, "c"},
	{`\bsp`, "p"},
	{`\btr`, "tr"},
	{`\bbr`, "r"},
	{`\bcr|\bpr|\bgr|\bdr|\bfr`, "r"},
	{`\bbl|\bcl|\bsl|\bpl`, "l"},
	{`\bfl`, "ph"},

	{`ck`, "c"},
	{`sh`, "s"},
	{`ch`, "ch"},
	{`th`, "th"},
	{`ph`, "ph"},
	{`wh`, "q"},
	{`qu`, "q"},
	{`kn`, "n"},
	{`wr`, "r"},
})

// =============================================================================
// Ending rules, all anchored at the end of the word
// =============================================================================

var endingRules = compileRules([]ruleSpec{
	{`le$`, "ồ"},

	{`ook$`, "úc"},
	{`ood$`, "út"},
	{`ool$`, "un"},
	{`oom$`, "um"},
	{`oon$`, "un"},
	{`oot$`, "út"},
	{`iend$`, "en"},
	{`end$`, "en"},
	{`eau$`, "iu"},

	{`ail$`, "ain"},
	{`ain$`, "ain"},
	{`ait$`, "ât"},

	{`oat$`, "ốt"},
	{`oad$`, "ốt"},
	{`oal$`, "ôn"},

	{`eep$`, "íp"},
	{`eet$`, "ít"},
	{`eel$`, "in"},

	{`atch$`, "át"},
	{`etch$`, "éch"},
	{`itch$`, "ích"},
	{`otch$`, "ốt"},
	{`utch$`, "út"},

	{`edge$`, "ét"},
	{`idge$`, "ít"},
	{`odge$`, "ót"},
	{`udge$`, "út"},

	{`ack$`, "ác"},
	{`eck$`, "éc"},
	{`ick$`, "ích"},
	{`ock$`, "óc"},
	{`uck$`, "úc"},

	{`ash$`, "át"},
	{`esh$`, "ét"},
	{`ish$`, "ít"},
	{`osh$`, "ốt"},
	{`ush$`, "út"},

	{`ath$`, "át"},
	{`eth$`, "ét"},
	{`ith$`, "ít"},
	{`oth$`, "ót"},
	{`uth$`, "út"},

	{`ate$`, "ây"},
	{`ete$`, "ét"},
	{`ite$`, "ai"},
	{`ote$`, "ốt"},
	{`ute$`, "út"},

	{`ade$`, "ây"},
	{`ede$`, "ét"},
	{`ide$`, "ai"},
	{`ode$`, "ốt"},
	{`ude$`, "út"},

	{`ake$`, "ây"},
	{`ame$`, "am"},
	{`ane$`, "an"},
	{`ape$`, "ếp"},
	{`eke$`, "ét"},
	{`eme$`, "êm"},
	{`ene$`, "en"},
	{`ike$`, "íc"},
	{`ime$`, "am"},
	{`ine$`, "ai"},
	{`oke$`, "ốc"},
	{`ome$`, "om"},
	{`one$`, "oăn"},
	{`uke$`, "ấc"},
	{`ume$`, "uym"},
	{`une$`, "uyn"},

	{`ase$`, "ây"},
	{`ise$`, "ai"},
	{`ose$`, "âu"},

	{`all$`, "âu"},
	{`ell$`, "eo"},
	{`ill$`, "iu"},
	{`oll$`, "ôn"},
	{`ull$`, "un"},

	{`ang$`, "ang"},
	{`eng$`, "ing"},
	{`ong$`, "ong"},
	{`ung$`, "âng"},

	{`air$`, "e"},
	{`ear$`, "ia"},
	{`ire$`, "ai"},
	{`ure$`, "iu"},
	{`our$`, "ao"},
	{`ore$`, "o"},
	{`ound$`, "ao"},
	{`ight$`, "ai"},
	{`aught$`, "ót"},
	{`ought$`, "ót"},
	{`eigh$`, "ây"},
	{`ork$`, "ót"},

	{`ee$`, "i"},
	{`ea$`, "i"},
	{`oo$`, "u"},
	{`oa$`, "oa"},
	{`oe$`, "oe"},
	{`ai$`, "ai"},
	{`ay$`, "ay"},
	{`au$`, "au"},
	{`aw$`, "â"},
	{`ei$`, "ây"},
	{`ey$`, "ây"},
	{`oi$`, "oi"},
	{`oy$`, "oi"},
	{`ou$`, "u"},
	{`ow$`, "ô"},
	{`ue$`, "ue"},
	{`ui$`, "ui"},
	{`ie$`, "ai"},
	{`eu$`, "iu"},

	{`ar$`, "a"},
	{`er$`, "ơ"},
	{`ir$`, "ơ"},
	{`or$`, "o"},
	{`ur$`, "ơ"},

	{`al$`, "an"},
	{`el$`, "eo"},
	{`il$`, "iu"},
	{`ol$`, "ôn"},
	{`ul$`, "un"},

	{`ab$`, "áp"},
	{`ad$`, "át"},
	{`ag$`, "ác"},
	{`ak$`, "át"},
	{`ap$`, "áp"},
	{`at$`, "át"},
	{`eb$`, "ép"},
	{`ed$`, "ét"},
	{`eg$`, "ét"},
	{`ek$`, "éc"},
	{`ep$`, "ép"},
	{`et$`, "ét"},
	{`ib$`, "íp"},
	{`id$`, "ít"},
	{`ig$`, "íc"},
	{`ik$`, "íc"},
	{`ip$`, "íp"},
	{`it$`, "ít"},
	{`ob$`, "óp"},
	{`od$`, "ót"},
	{`og$`, "óc"},
	{`ok$`, "óc"},
	{`op$`, "óp"},
	{`ot$`, "ót"},
	{`ub$`, "úp"},
	{`ud$`, "út"},
	{`ug$`, "úc"},
	{`uk$`, "úc"},
	{`up$`, "úp"},
	{`ut$`, "út"},

	{`am$`, "am"},
	{`an$`, "an"},
	{`em$`, "em"},
	{`en$`, "en"},
	{`im$`, "im"},
	{`in$`, "in"},
	{`om$`, "om"},
	{`on$`, "on"},
	{`um$`, "âm"},
	{`un$`, "ân"},

	{`as$`, "ẹt"},
	{`es$`, "ẹt"},
	{`is$`, "ít"},
	{`os$`, "ọt"},
	{`us$`, "ợt"},

	{`aa$`, "a"},
	{`ii$`, "i"},
	{`uu$`, "u"},
})

// =============================================================================
// General letter mapping
// =============================================================================

var generalRules = compileRules([]ruleSpec{
	{`j`, "d"},
	{`z`, "d"},
	{`w`, "u"},
	{`f`, "ph"},
	{`s`, "x"},
	{`c`, "k"},
	{`q`, "ku"},
})
