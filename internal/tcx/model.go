package tcx

import "time"

// TrainingCenterDatabase is the root of one parsed TCX document. A document
// may contain any subset of the four subtrees; an absent subtree means "not
// recorded", not an error.
type TrainingCenterDatabase struct {
	Activities *ActivityList `xml:"Activities" json:"activities,omitempty"`
	Folders    *Folders      `xml:"Folders" json:"folders,omitempty"`
	Courses    *CourseList   `xml:"Courses" json:"courses,omitempty"`
	Extensions *Extensions   `xml:"Extensions" json:"extensions,omitempty"`
}

// ActivityList holds the activities of a document in document order.
type ActivityList struct {
	Activities []Activity `xml:"Activity" json:"activities"`
}

// Activity is one recorded workout. The ID is conventionally the start
// timestamp but is carried as an opaque string and never validated.
type Activity struct {
	Sport      string        `json:"sport"`
	ID         string        `json:"id"`
	Laps       []ActivityLap `json:"laps"`
	Notes      *string       `json:"notes,omitempty"`
	Extensions *Extensions   `json:"extensions,omitempty"`
}

// ActivityLap is a device- or user-delimited segment of an activity.
//
// AverageHeartRate and MaximumHeartRate are not read from the document; they
// are derived fields owned by ComputeHeartRates and are either both nil or
// both set from the lap's trackpoint samples.
type ActivityLap struct {
	TotalTimeSeconds float64        `json:"total_time_seconds"`
	DistanceMeters   float64        `json:"distance_meters"`
	MaximumSpeed     *float64       `json:"maximum_speed,omitempty"`
	Calories         uint16         `json:"calories"`
	AverageHeartRate *float64       `json:"average_heart_rate,omitempty"`
	MaximumHeartRate *float64       `json:"maximum_heart_rate,omitempty"`
	Intensity        *Intensity     `json:"intensity,omitempty"`
	Cadence          *uint8         `json:"cadence,omitempty"`
	TriggerMethod    *TriggerMethod `json:"trigger_method,omitempty"`
	Tracks           []Track        `json:"tracks"`
	Notes            *string        `json:"notes,omitempty"`
	Extensions       *Extensions    `json:"extensions,omitempty"`
}

// Track is an ordered run of trackpoints. Points are kept in document order;
// the parser never re-sorts them.
type Track struct {
	Trackpoints []Trackpoint `xml:"Trackpoint" json:"trackpoints"`
}

// Trackpoint is one timestamped sample. Every field except the timestamp is
// optional; a nil field means the device did not record that channel for this
// sample, which is distinct from recording zero.
type Trackpoint struct {
	Time           time.Time   `json:"time"`
	Position       *Position   `json:"position,omitempty"`
	AltitudeMeters *float64    `json:"altitude_meters,omitempty"`
	DistanceMeters *float64    `json:"distance_meters,omitempty"`
	HeartRate      *HeartRate  `json:"heart_rate,omitempty"`
	Cadence        *uint8      `json:"cadence,omitempty"`
	Extensions     *Extensions `json:"extensions,omitempty"`
}

// HeartRate is a single beats-per-minute reading.
type HeartRate struct {
	Value float64 `json:"value"`
}

// Position is a point in decimal degrees. Values are passed through without
// range checks.
type Position struct {
	LatitudeDegrees  float64 `json:"latitude_degrees"`
	LongitudeDegrees float64 `json:"longitude_degrees"`
}

// Extensions is a vendor extension block. Only the well-known power/speed
// extension (TPX) is modeled; any other extension content is dropped.
type Extensions struct {
	TPX *TPX `xml:"TPX" json:"tpx,omitempty"`
}

// TPX carries the power extension attached to a trackpoint. The namespace
// prefix on the element (commonly ns3) is not checked, only the local name.
type TPX struct {
	Speed *float64 `json:"speed,omitempty"`
	Watts *uint16  `json:"watts,omitempty"`
}

// Folders mirrors the document's folder tree. History and Workouts are
// structurally empty placeholders: only their presence or absence is carried.
type Folders struct {
	History  *HistoryFolder  `xml:"History" json:"history,omitempty"`
	Workouts *WorkoutsFolder `xml:"Workouts" json:"workouts,omitempty"`
	Courses  *CourseFolder   `xml:"Courses" json:"courses,omitempty"`
}

// HistoryFolder marks that the document declared a history folder.
type HistoryFolder struct{}

// WorkoutsFolder marks that the document declared a workouts folder.
type WorkoutsFolder struct{}

// CourseFolder is self-referential: each folder may hold at most one nested
// Folder, so nesting forms a chain rather than a general tree. Depth is
// bounded only by memory.
type CourseFolder struct {
	Name          string        `xml:"Name,attr" json:"name,omitempty"`
	Folder        *CourseFolder `xml:"Folder" json:"folder,omitempty"`
	CourseNameRef *string       `xml:"CourseNameRef>Id" json:"course_name_ref,omitempty"`
	Notes         *string       `xml:"Notes" json:"notes,omitempty"`
	Extensions    *Extensions   `xml:"Extensions" json:"extensions,omitempty"`
}

// CourseList holds the courses of a document.
type CourseList struct {
	CourseFolder *CourseFolder `xml:"CourseFolder" json:"course_folder,omitempty"`
	Courses      []Course      `xml:"Course" json:"courses"`
}

// Course is a planned route. Unlike activities, all of its parts are
// optional.
type Course struct {
	Name        *string      `xml:"Name" json:"name,omitempty"`
	Lap         *CourseLap   `xml:"Lap" json:"lap,omitempty"`
	Tracks      []Track      `xml:"Track" json:"tracks"`
	CoursePoint *CoursePoint `xml:"CoursePoint" json:"course_point,omitempty"`
	Notes       *string      `xml:"Notes" json:"notes,omitempty"`
	Creator     *Creator     `xml:"Creator" json:"creator,omitempty"`
	Extensions  *Extensions  `xml:"Extensions" json:"extensions,omitempty"`
}

// CourseLap mirrors ActivityLap's timing, heart-rate, intensity and cadence
// fields but describes course geometry (begin/end positions and altitudes)
// instead of recorded performance. Its heart-rate fields come straight from
// the document; ComputeHeartRates does not touch course laps.
type CourseLap struct {
	TotalTimeSeconds    float64     `json:"total_time_seconds"`
	DistanceMeters      float64     `json:"distance_meters"`
	BeginPosition       *Position   `json:"begin_position,omitempty"`
	BeginAltitudeMeters *float64    `json:"begin_altitude_meters,omitempty"`
	EndPosition         *Position   `json:"end_position,omitempty"`
	EndAltitudeMeters   *float64    `json:"end_altitude_meters,omitempty"`
	AverageHeartRate    *float64    `json:"average_heart_rate,omitempty"`
	MaximumHeartRate    *float64    `json:"maximum_heart_rate,omitempty"`
	Intensity           *Intensity  `json:"intensity,omitempty"`
	Cadence             *uint8      `json:"cadence,omitempty"`
	Extensions          *Extensions `json:"extensions,omitempty"`
}

// CoursePoint is a named, timestamped waypoint on a course.
type CoursePoint struct {
	Name           string          `json:"name"`
	Time           time.Time       `json:"time"`
	Position       *Position       `json:"position,omitempty"`
	AltitudeMeters *float64        `json:"altitude_meters,omitempty"`
	PointType      CoursePointType `json:"point_type"`
	Notes          *string         `json:"notes,omitempty"`
	Extensions     *Extensions     `json:"extensions,omitempty"`
}

// Creator identifies the device or program that produced a course.
type Creator struct {
	Name    *string  `xml:"Name" json:"name,omitempty"`
	Version *Version `xml:"Version" json:"version,omitempty"`
}

// Version is informational only; no logic reads it.
type Version struct {
	VersionMajor uint16  `json:"version_major"`
	VersionMinor uint16  `json:"version_minor"`
	BuildMajor   *uint16 `json:"build_major,omitempty"`
	BuildMinor   *uint16 `json:"build_minor,omitempty"`
}
