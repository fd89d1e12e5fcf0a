package metadomain

type AdAccount struct {
	BusinessManagerID   string `json:"business_id"`
	BusinessManagerName string `json:"business_name"`
	ID                  string `json:"id"`
	Name                string `json:"name"`
}

// AdInsight representa uma linha de insights no nível de anúncio (level=ad).
// A API do Meta retorna as métricas numéricas como strings.
type AdInsight struct {
	AccountID         string `json:"account_id"`
	AccountCurrency   string `json:"account_currency"`
	AdID              string `json:"ad_id"`
	AdName            string `json:"ad_name"`
	CampaignID        string `json:"campaign_id"`
	Clicks            string `json:"clicks"`
	CPC               string `json:"cpc"`
	CPM               string `json:"cpm"`
	CTR               string `json:"ctr"`
	DateStart         string `json:"date_start"`
	DateStop          string `json:"date_stop"`
	Frequency         string `json:"frequency"`
	Impressions       string `json:"impressions"`
	PublisherPlatform string `json:"publisher_platform"`
	Reach             string `json:"reach"`
	Spend             string `json:"spend"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}
