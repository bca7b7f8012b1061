package spypoint

// Wire types for the SpyPoint v3 API. Field sets mirror the vendor's JSON;
// unknown fields are ignored on decode.

// Login is the request body for the login call.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session credentials returned by login.
type LoginResponse struct {
	UUID  string `json:"uuid"`
	Token string `json:"token"`
}

// Session holds the credentials for authenticated calls. It is an explicit
// value threaded through every call rather than state held on the client.
type Session struct {
	UUID  string
	Token string
}

// Camera is the vendor's camera detail view.
type Camera struct {
	ActivationDate string         `json:"activationDate"`
	Config         CameraConfig   `json:"config"`
	HDSince        string         `json:"hdSince"`
	ID             string         `json:"id"`
	Status         CameraStatus   `json:"status"`
	UCID           string         `json:"ucid"`
	User           string         `json:"user"`
	IsCellular     bool           `json:"isCellular"`
	Subscriptions  []Subscription `json:"subscriptions"`
	DataMatrixKey  string         `json:"dataMatrixKey"`
}

// CameraConfig is the configured behavior of a camera. Only a subset of the
// vendor's config surface is interesting here.
type CameraConfig struct {
	BatteryType    string `json:"batteryType"`
	Capture        bool   `json:"capture"`
	CaptureMode    string `json:"captureMode"`
	Name           string `json:"name"`
	OperationMode  string `json:"operationMode"`
	Quality        string `json:"quality"`
	TransmitAuto   bool   `json:"transmitAuto"`
	TransmitFormat string `json:"transmitFormat"`
	TransmitFreq   int64  `json:"transmitFreq"`
}

// CameraStatus is the camera's self-reported hardware state.
type CameraStatus struct {
	Batteries     []int64      `json:"batteries"`
	BatteryType   string       `json:"batteryType"`
	Coordinates   []Coordinate `json:"coordinates"`
	InstallDate   string       `json:"installDate"`
	LastUpdate    string       `json:"lastUpdate"`
	Memory        Memory       `json:"memory"`
	Model         string       `json:"model"`
	ModemFirmware string       `json:"modemFirmware"`
	Signal        Signal       `json:"signal"`
	SIM           string       `json:"sim"`
	Temperature   Temperature  `json:"temperature"`
	Version       string       `json:"version"`
}

// Coordinate is a GPS fix reported by the camera.
type Coordinate struct {
	DateTime  string   `json:"dateTime"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
	Position  Position `json:"position"`
	Geohash   string   `json:"geohash"`
}

// Position is a GeoJSON point: coordinates are [longitude, latitude].
type Position struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Memory reports SD card usage in megabytes.
type Memory struct {
	Size int64 `json:"size"`
	Used int64 `json:"used"`
}

// Signal reports cellular signal strength.
type Signal struct {
	Bar       int64           `json:"bar"`
	DBm       int64           `json:"dBm"`
	Type      string          `json:"type"`
	Processed ProcessedSignal `json:"processed"`
}

// ProcessedSignal is the vendor's normalized signal reading.
type ProcessedSignal struct {
	Percentage int64 `json:"percentage"`
	Bar        int64 `json:"bar"`
	LowSignal  bool  `json:"lowSignal"`
}

// Temperature is the camera's ambient temperature reading.
type Temperature struct {
	Unit  string `json:"unit"`
	Value int64  `json:"value"`
}

// Subscription is a camera's plan and quota usage.
type Subscription struct {
	ID            string `json:"id"`
	CameraID      string `json:"cameraId"`
	PaymentStatus string `json:"paymentStatus"`
	IsActive      bool   `json:"isActive"`
	IsFree        bool   `json:"isFree"`
	PhotoCount    int64  `json:"photoCount"`
}

// PhotosRequest is the request body for the photo listing call.
type PhotosRequest struct {
	Camera     []string `json:"camera"`
	DateEnd    string   `json:"dateEnd"`
	MediaTypes []string `json:"mediaTypes"`
	Species    []string `json:"species"`
	Limit      int      `json:"limit"`
}

// PhotosResponse is a batch of photos for the requested cameras.
type PhotosResponse struct {
	Photos      []Photo  `json:"photos"`
	CameraIDs   []string `json:"cameraIds"`
	CountPhotos int64    `json:"countPhotos"`
}

// Photo is the vendor's photo metadata view.
type Photo struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Tag        []string `json:"tag"`
	OriginName string   `json:"originName"`
	OriginSize int64    `json:"originSize"`
	OriginDate string   `json:"originDate"`
	Small      MediaRef `json:"small"`
	Medium     MediaRef `json:"medium"`
	Large      MediaRef `json:"large"`
	Camera     string   `json:"camera"`
}

// MediaRef locates one size variant of a photo.
type MediaRef struct {
	Verb    string   `json:"verb"`
	Path    string   `json:"path"`
	Host    string   `json:"host"`
	Headers []Header `json:"headers"`
}

// Header is a request header required to fetch a media variant.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// URL returns the full download URL for the variant.
func (m MediaRef) URL() string {
	return "https://" + m.Host + "/" + m.Path
}
