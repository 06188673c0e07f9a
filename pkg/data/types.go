package data

// Item is a single catalog entry: a project or member organization classified
// under a category/subcategory pair. All fields besides ID, Name, Category and
// Subcategory are optional; optional nested records are nil when absent.
type Item struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Category          string       `json:"category"`
	Subcategory       string       `json:"subcategory"`
	Maturity          string       `json:"maturity,omitempty"`
	MemberSubcategory string       `json:"member_subcategory,omitempty"`
	HomepageURL       string       `json:"homepage_url,omitempty"`
	CrunchbaseURL     string       `json:"crunchbase_url,omitempty"`
	DevstatsURL       string       `json:"devstats_url,omitempty"`
	TwitterURL        string       `json:"twitter_url,omitempty"`
	AcceptedAt        string       `json:"accepted_at,omitempty"`
	Crunchbase        *Crunchbase  `json:"crunchbase_data,omitempty"`
	Repositories      []Repository `json:"repositories,omitempty"`
}

// Crunchbase holds the organization record collected for an item.
type Crunchbase struct {
	Name        string   `json:"name,omitempty"`
	Country     string   `json:"country,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	CompanyType string   `json:"company_type,omitempty"`
	HomepageURL string   `json:"homepage_url,omitempty"`
	Funding     *int64   `json:"funding,omitempty"`
}

// Repository is a source repository attached to an item. At most one
// repository per item is primary; when the data marks several, the first one
// wins.
type Repository struct {
	URL     string      `json:"url"`
	Primary bool        `json:"primary,omitempty"`
	Github  *GithubData `json:"github_data,omitempty"`
}

// GithubData holds the repository metrics collected from GitHub.
type GithubData struct {
	Stars   int64  `json:"stars,omitempty"`
	License string `json:"license,omitempty"`
}

// Category declares a category and its subcategories in presentation order.
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory declares a subcategory in presentation order.
type Subcategory struct {
	Name string `json:"name"`
}

// Dataset is the in-memory catalog: the foundation name, the declared
// category ordering and the items. It is immutable once loaded.
type Dataset struct {
	Foundation string     `json:"foundation"`
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
}

// PrimaryRepository returns the repository marked primary, falling back to
// the first repository when none is marked. Returns nil when the item has no
// repositories.
func (i *Item) PrimaryRepository() *Repository {
	for idx := range i.Repositories {
		if i.Repositories[idx].Primary {
			return &i.Repositories[idx]
		}
	}
	if len(i.Repositories) > 0 {
		return &i.Repositories[0]
	}
	return nil
}

// Stars sums the collected star counts across all repositories.
func (i *Item) Stars() int64 {
	var total int64
	for _, repo := range i.Repositories {
		if repo.Github != nil {
			total += repo.Github.Stars
		}
	}
	return total
}

// Licenses collects the distinct licenses across all repositories, in
// repository order. Repositories without collected GitHub data contribute
// nothing.
func (i *Item) Licenses() []string {
	var licenses []string
	seen := map[string]bool{}
	for _, repo := range i.Repositories {
		if repo.Github == nil || repo.Github.License == "" {
			continue
		}
		if seen[repo.Github.License] {
			continue
		}
		seen[repo.Github.License] = true
		licenses = append(licenses, repo.Github.License)
	}
	return licenses
}
