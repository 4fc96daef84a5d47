// Package identity infers the organization and country behind a model.
//
// Two resolution strategies exist because the two leaderboard shapes carry no
// shared join key: the primary list has only model names, so names are matched
// against a curated prefix table; arena rows carry an explicit organization
// string, which is looked up in a curated organization table instead. Callers
// try the prefix strategy first and fall back to the explicit organization.
package identity

import "strings"

// Unknown is the country assigned when no curated table matches.
const Unknown = "unknown"

// Identity is the resolved origin of a model or organization.
type Identity struct {
	Organization string
	Country      string
}

// countryByPrefix maps a lower-cased model-name prefix to a country.
var countryByPrefix = map[string]string{
	"llama":       "USA",
	"gemini":      "USA",
	"gpt":         "USA",
	"claude":      "USA",
	"mistral":     "France",
	"mixtral":     "France",
	"qwen":        "China",
	"qwen2":       "China",
	"qwen3":       "China",
	"glm":         "China",
	"hunyuan":     "China",
	"deepseek":    "China",
	"yi":          "China",
	"amazon-nova": "USA",
	"olmo":        "USA",
	"gemma":       "USA",
	"phi":         "USA",
	"grok":        "USA",
	"granite":     "USA",
	"jamba":       "Israel",
	"openchat":    "USA",
	"reka":        "USA",
	"wizardlm":    "China",
	"flux":        "Germany",
	"command":     "Canada",
	"c4ai":        "Canada",
}

// orgByPrefix maps the same prefixes to their organizations.
var orgByPrefix = map[string]string{
	"llama":       "Meta",
	"gemini":      "Google",
	"gpt":         "OpenAI",
	"claude":      "Anthropic",
	"mistral":     "Mistral",
	"mixtral":     "Mistral",
	"qwen":        "Alibaba",
	"qwen2":       "Alibaba",
	"qwen3":       "Alibaba",
	"glm":         "Zhipu",
	"hunyuan":     "Tencent",
	"deepseek":    "DeepSeek",
	"yi":          "01 AI",
	"amazon-nova": "Amazon",
	"olmo":        "Allen AI",
	"gemma":       "Google",
	"phi":         "Microsoft",
	"grok":        "xAI",
	"granite":     "IBM",
	"jamba":       "AI21 Labs",
	"openchat":    "OpenChat",
	"reka":        "Reka AI",
	"wizardlm":    "Microsoft",
	"flux":        "Black Forest Labs",
	"command":     "Cohere",
	"c4ai":        "Cohere",
}

// countryByOrg maps an explicit organization string, case-sensitively, to a
// country. Arena rows state organizations verbatim, so keys match the source
// spelling.
var countryByOrg = map[string]string{
	"Google":            "USA",
	"OpenAI":            "USA",
	"Anthropic":         "USA",
	"Meta":              "USA",
	"Microsoft":         "USA",
	"Nvidia":            "USA",
	"IBM":               "USA",
	"Amazon":            "USA",
	"Alibaba":           "China",
	"Tencent":           "China",
	"Baidu":             "China",
	"Zhipu AI":          "China",
	"Z.ai":              "China",
	"Moonshot":          "China",
	"Bytedance":         "China",
	"DeepSeek":          "China",
	"xAI":               "USA",
	"Mistral":           "France",
	"Black Forest Labs": "Germany",
	"AI21 Labs":         "Israel",
	"Cohere":            "Canada",
}

// Resolve matches a model name against the prefix table and returns its
// identity. The name is lower-cased first; when several prefixes apply the
// longest one wins, so "qwen2-72b" resolves through "qwen2" rather than
// "qwen". The boolean is false when no prefix matches.
func Resolve(name string) (Identity, bool) {
	key := strings.ToLower(name)
	best := ""
	for prefix := range countryByPrefix {
		if strings.HasPrefix(key, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return Identity{}, false
	}
	return Identity{Organization: orgByPrefix[best], Country: countryByPrefix[best]}, true
}

// ResolveOrg resolves an explicit organization string to its country. The
// lookup is case-sensitive. Unmatched organizations resolve to the Unknown
// country but keep their literal organization string; they are never dropped.
func ResolveOrg(org string) Identity {
	if country, ok := countryByOrg[org]; ok {
		return Identity{Organization: org, Country: country}
	}
	return Identity{Organization: org, Country: Unknown}
}
