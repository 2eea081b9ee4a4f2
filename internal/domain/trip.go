package domain

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// Trip is the unit of travel planning. The ID is assigned at creation and
// never changes; every identity-keyed collection inside a trip holds unique ids.
type Trip struct {
	ID              string     `json:"id" validate:"required"`
	Title           string     `json:"title"`
	Location        string     `json:"location"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Description     string     `json:"description"`
	Status          TripStatus `json:"status"`
	CoverImage      string     `json:"cover_image,omitempty"`
	Budget          float64    `json:"budget"`
	DefaultCurrency string     `json:"default_currency,omitempty"`
	Rating          int        `json:"rating,omitempty"`

	Photos    []Photo                    `json:"photos,omitempty"`
	Comments  []Comment                  `json:"comments,omitempty"`
	Itinerary map[string][]ItineraryItem `json:"itinerary,omitempty"`
	Flights   map[string][]Flight        `json:"flights,omitempty"`
	Hotels    []Hotel                    `json:"hotels,omitempty"`
	Resources []PlanningResource         `json:"resources,omitempty"`
	Expenses  []Expense                  `json:"expenses,omitempty"`

	DayRatings   map[string]int `json:"day_ratings,omitempty"`
	FavoriteDays []string       `json:"favorite_days,omitempty"`
}

type Photo struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Date    string `json:"date,omitempty"`
	TakenAt string `json:"taken_at,omitempty"`
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ItineraryItem struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Address  string `json:"address,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

// Flight records are keyed by date in Trip.Flights. Unlike the other
// collections they are wholesale-replaced per date rather than merged item
// by item, so they carry no identity key.
type Flight struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	Confirmation  string `json:"confirmation,omitempty"`
}

type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	CheckIn       string  `json:"check_in,omitempty"`
	CheckOut      string  `json:"check_out,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Confirmation  string  `json:"confirmation,omitempty"`
}

type PlanningResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type Expense struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Category string  `json:"category,omitempty"`
	Date     string  `json:"date,omitempty"`
}

type CustomEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

func (p Photo) Key() string            { return p.ID }
func (c Comment) Key() string          { return c.ID }
func (i ItineraryItem) Key() string    { return i.ID }
func (h Hotel) Key() string            { return h.ID }
func (r PlanningResource) Key() string { return r.ID }
func (e Expense) Key() string          { return e.ID }
func (e CustomEvent) Key() string      { return e.ID }
