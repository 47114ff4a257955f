package schema

const (
	CountryCollection = "country"
)

// Country is the dataset metadata of a single tracked country
type Country struct {
	Key             string `json:"key" bson:"key"`
	ID              string `json:"id" bson:"id"`
	Archived        bool   `json:"archived" bson:"archived"`
	CountryID       string `json:"country_id" bson:"country_id"`
	CountryName     string `json:"country_name" bson:"country_name"`
	Name            string `json:"name" bson:"name"`
	DueDate         string `json:"due_date" bson:"due_date"`
	OverdueDate     string `json:"overdue_date" bson:"overdue_date"`
	ResourceCreated string `json:"resource_created" bson:"resource_created"`
	DownloadURL     string `json:"download_url" bson:"download_url"`
	FileName        string `json:"file_name" bson:"file_name"`
}
