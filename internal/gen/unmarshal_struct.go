package gen

// CurrencyNames is the layout of cldr-json main/<locale>/currencies.json. The key of Main is the
// CLDR locale tag, e.g. "sr-Latn"
type CurrencyNames struct {
	Main map[string]LocaleDocument `json:"main"`
}

type LocaleDocument struct {
	Identity struct {
		Version struct {
			ClDRVersion string `json:"_cldrVersion"`
		} `json:"version"`
		Language  string `json:"language"`
		Script    string `json:"script"`
		Territory string `json:"territory"`
	} `json:"identity"`
	Numbers struct {
		Currencies map[string]CurrencyData `json:"currencies"`
	} `json:"numbers"`
}

type CurrencyData struct {
	DisplayName string `json:"displayName"`
	Symbol      string `json:"symbol"`
	Sign        string `json:"symbol-alt-narrow"`
}
