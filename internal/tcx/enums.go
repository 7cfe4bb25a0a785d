package tcx

import (
	"encoding/xml"
	"strings"
)

// The TCX vocabularies are closed: decoding accepts exactly the listed
// members, case-sensitively. Anything else is a *MappingError naming the
// offending value, never a silent default.

// Intensity classifies a lap as work or recovery.
type Intensity string

const (
	IntensityActive  Intensity = "Active"
	IntensityResting Intensity = "Resting"
)

// TriggerMethod records what ended a lap.
type TriggerMethod string

const (
	TriggerManual    TriggerMethod = "Manual"
	TriggerDistance  TriggerMethod = "Distance"
	TriggerLocation  TriggerMethod = "Location"
	TriggerTime      TriggerMethod = "Time"
	TriggerHeartRate TriggerMethod = "HeartRate"
)

// CoursePointType tags a course waypoint with a route or climb
// classification.
type CoursePointType string

const (
	CoursePointGeneric        CoursePointType = "Generic"
	CoursePointSummit         CoursePointType = "Summit"
	CoursePointValley         CoursePointType = "Valley"
	CoursePointWater          CoursePointType = "Water"
	CoursePointFood           CoursePointType = "Food"
	CoursePointDanger         CoursePointType = "Danger"
	CoursePointLeft           CoursePointType = "Left"
	CoursePointRight          CoursePointType = "Right"
	CoursePointStraight       CoursePointType = "Straight"
	CoursePointFirstAid       CoursePointType = "First Aid"
	CoursePointFourthCategory CoursePointType = "4th Category"
	CoursePointThirdCategory  CoursePointType = "3rd Category"
	CoursePointSecondCategory CoursePointType = "2nd Category"
	CoursePointFirstCategory  CoursePointType = "1st Category"
	CoursePointHorsCategory   CoursePointType = "Hors Category"
	CoursePointSprint         CoursePointType = "Sprint"
)

// BuildType classifies a software build. Informational vocabulary; no
// modeled element currently carries it.
type BuildType string

const (
	BuildInternal BuildType = "Internal"
	BuildAlpha    BuildType = "Alpha"
	BuildBeta     BuildType = "Beta"
	BuildRelease  BuildType = "Release"
)

// SpeedType distinguishes pace-based from speed-based targets. Informational
// vocabulary; no modeled element currently carries it.
type SpeedType string

const (
	SpeedPace  SpeedType = "Pace"
	SpeedSpeed SpeedType = "Speed"
)

var (
	intensityValues = []Intensity{IntensityActive, IntensityResting}

	triggerMethodValues = []TriggerMethod{
		TriggerManual, TriggerDistance, TriggerLocation, TriggerTime, TriggerHeartRate,
	}

	coursePointTypeValues = []CoursePointType{
		CoursePointGeneric, CoursePointSummit, CoursePointValley,
		CoursePointWater, CoursePointFood, CoursePointDanger,
		CoursePointLeft, CoursePointRight, CoursePointStraight,
		CoursePointFirstAid, CoursePointFourthCategory, CoursePointThirdCategory,
		CoursePointSecondCategory, CoursePointFirstCategory, CoursePointHorsCategory,
		CoursePointSprint,
	}

	buildTypeValues = []BuildType{BuildInternal, BuildAlpha, BuildBeta, BuildRelease}

	speedTypeValues = []SpeedType{SpeedPace, SpeedSpeed}
)

// ParseIntensity converts text into an Intensity, rejecting values outside
// the vocabulary.
func ParseIntensity(s string) (Intensity, error) {
	return parseEnum(s, "Intensity", intensityValues)
}

// ParseTriggerMethod converts text into a TriggerMethod.
func ParseTriggerMethod(s string) (TriggerMethod, error) {
	return parseEnum(s, "TriggerMethod", triggerMethodValues)
}

// ParseCoursePointType converts text into a CoursePointType.
func ParseCoursePointType(s string) (CoursePointType, error) {
	return parseEnum(s, "PointType", coursePointTypeValues)
}

// ParseBuildType converts text into a BuildType.
func ParseBuildType(s string) (BuildType, error) {
	return parseEnum(s, "BuildType", buildTypeValues)
}

// ParseSpeedType converts text into a SpeedType.
func ParseSpeedType(s string) (SpeedType, error) {
	return parseEnum(s, "SpeedType", speedTypeValues)
}

func parseEnum[E ~string](s, tag string, valid []E) (E, error) {
	for _, v := range valid {
		if E(s) == v {
			return v, nil
		}
	}
	return "", invalidEnum(tag, s, valid)
}

func invalidEnum[E ~string](tag, got string, valid []E) error {
	members := make([]string, len(valid))
	for i, v := range valid {
		members[i] = string(v)
	}
	return &MappingError{
		Tag:    tag,
		Reason: "invalid " + tag + " value \"" + got + "\" (expected one of " + strings.Join(members, ", ") + ")",
	}
}

func (i *Intensity) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeEnumElement(d, start, intensityValues)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (m *TriggerMethod) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeEnumElement(d, start, triggerMethodValues)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (p *CoursePointType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeEnumElement(d, start, coursePointTypeValues)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (b *BuildType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeEnumElement(d, start, buildTypeValues)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (s *SpeedType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeEnumElement(d, start, speedTypeValues)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func decodeEnumElement[E ~string](d *xml.Decoder, start xml.StartElement, valid []E) (E, error) {
	s, err := decodeText(d, start)
	if err != nil {
		return "", err
	}
	v, err := parseEnum(s, start.Name.Local, valid)
	if err != nil {
		return "", err
	}
	return v, nil
}
