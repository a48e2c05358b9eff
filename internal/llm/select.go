package llm

var fallbackOrder = []Provider{ProviderGemini, ProviderAnthropic, ProviderOpenAI}

// SelectProvider picks the provider to call. The preferred provider wins when
// it has a key, otherwise the first keyed provider in fallback order is used.
func SelectProvider(preferred Provider, creds Credentials) (Provider, error) {
	if preferred != "" && creds.For(preferred).Configured() {
		return preferred, nil
	}
	for _, p := range fallbackOrder {
		if creds.For(p).Configured() {
			return p, nil
		}
	}
	return "", &ConfigurationError{Reason: "set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY"}
}
