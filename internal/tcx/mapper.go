package tcx

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

// The mapper binds XML tags to model fields. Containers whose children are
// all optional rely on encoding/xml struct tags; elements with required
// children, timestamps or bounded integers decode by hand below so that a
// failure names the offending tag and the expected type. Tag matching is
// case-sensitive on the local name; namespace prefixes are ignored, and any
// child the switch does not recognize is skipped.

// decodeChildren walks the direct children of start, dispatching each child
// start tag to fn. fn reports whether it consumed the child; unconsumed
// children are skipped wholesale.
func decodeChildren(d *xml.Decoder, start xml.StartElement, fn func(child xml.StartElement) (bool, error)) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			handled, err := fn(t)
			if err != nil {
				return err
			}
			if !handled {
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			// Handlers consume their subtrees, so the first end tag
			// seen at this level closes start.
			return nil
		}
	}
}

func decodeText(d *xml.Decoder, start xml.StartElement) (string, error) {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func decodeFloat(d *xml.Decoder, start xml.StartElement) (float64, error) {
	s, err := decodeText(d, start)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, badValue(start.Name.Local, "floating point number", s, err)
	}
	return v, nil
}

func decodeUint8(d *xml.Decoder, start xml.StartElement) (uint8, error) {
	s, err := decodeText(d, start)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, badValue(start.Name.Local, "integer in 0..255", s, err)
	}
	return uint8(v), nil
}

func decodeUint16(d *xml.Decoder, start xml.StartElement) (uint16, error) {
	s, err := decodeText(d, start)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, badValue(start.Name.Local, "integer in 0..65535", s, err)
	}
	return uint16(v), nil
}

// decodeTime parses an RFC 3339 timestamp and normalizes it to UTC.
func decodeTime(d *xml.Decoder, start xml.StartElement) (time.Time, error) {
	s, err := decodeText(d, start)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, badValue(start.Name.Local, "RFC 3339 timestamp", s, err)
	}
	return t.UTC(), nil
}

func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (a *Activity) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if sport, ok := attr(start, "Sport"); ok {
		a.Sport = sport
	}
	var sawID bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "Id":
			id, err := decodeText(d, child)
			if err != nil {
				return false, err
			}
			a.ID = id
			sawID = true
		case "Lap":
			var lap ActivityLap
			if err := d.DecodeElement(&lap, &child); err != nil {
				return false, err
			}
			a.Laps = append(a.Laps, lap)
		case "Notes":
			notes, err := decodeText(d, child)
			if err != nil {
				return false, err
			}
			a.Notes = &notes
		case "Extensions":
			ext := new(Extensions)
			if err := d.DecodeElement(ext, &child); err != nil {
				return false, err
			}
			a.Extensions = ext
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	if !sawID {
		return missingField("Activity", "Id", "string")
	}
	return nil
}

func (l *ActivityLap) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawTime, sawDistance, sawCalories bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "TotalTimeSeconds":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.TotalTimeSeconds = v
			sawTime = true
		case "DistanceMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.DistanceMeters = v
			sawDistance = true
		case "MaximumSpeed":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.MaximumSpeed = &v
		case "Calories":
			v, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			l.Calories = v
			sawCalories = true
		case "Intensity":
			var v Intensity
			if err := d.DecodeElement(&v, &child); err != nil {
				return false, err
			}
			l.Intensity = &v
		case "Cadence":
			v, err := decodeUint8(d, child)
			if err != nil {
				return false, err
			}
			l.Cadence = &v
		case "TriggerMethod":
			var v TriggerMethod
			if err := d.DecodeElement(&v, &child); err != nil {
				return false, err
			}
			l.TriggerMethod = &v
		case "Track":
			var track Track
			if err := d.DecodeElement(&track, &child); err != nil {
				return false, err
			}
			l.Tracks = append(l.Tracks, track)
		case "Notes":
			notes, err := decodeText(d, child)
			if err != nil {
				return false, err
			}
			l.Notes = &notes
		case "Extensions":
			ext := new(Extensions)
			if err := d.DecodeElement(ext, &child); err != nil {
				return false, err
			}
			l.Extensions = ext
		default:
			// AverageHeartRateBpm and MaximumHeartRateBpm land here on
			// purpose: those lap fields are owned by ComputeHeartRates.
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	switch {
	case !sawTime:
		return missingField("Lap", "TotalTimeSeconds", "floating point number")
	case !sawDistance:
		return missingField("Lap", "DistanceMeters", "floating point number")
	case !sawCalories:
		return missingField("Lap", "Calories", "integer in 0..65535")
	}
	return nil
}

func (t *Trackpoint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawTime bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "Time":
			ts, err := decodeTime(d, child)
			if err != nil {
				return false, err
			}
			t.Time = ts
			sawTime = true
		case "Position":
			pos := new(Position)
			if err := d.DecodeElement(pos, &child); err != nil {
				return false, err
			}
			t.Position = pos
		case "AltitudeMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			t.AltitudeMeters = &v
		case "DistanceMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			t.DistanceMeters = &v
		case "HeartRateBpm":
			hr := new(HeartRate)
			if err := d.DecodeElement(hr, &child); err != nil {
				return false, err
			}
			t.HeartRate = hr
		case "Cadence":
			v, err := decodeUint8(d, child)
			if err != nil {
				return false, err
			}
			t.Cadence = &v
		case "Extensions":
			ext := new(Extensions)
			if err := d.DecodeElement(ext, &child); err != nil {
				return false, err
			}
			t.Extensions = ext
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	if !sawTime {
		return missingField("Trackpoint", "Time", "RFC 3339 timestamp")
	}
	return nil
}

func (h *HeartRate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawValue bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		if child.Name.Local != "Value" {
			return false, nil
		}
		v, err := decodeFloat(d, child)
		if err != nil {
			return false, err
		}
		h.Value = v
		sawValue = true
		return true, nil
	})
	if err != nil {
		return err
	}
	if !sawValue {
		return missingField(start.Name.Local, "Value", "floating point number")
	}
	return nil
}

func (p *Position) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawLat, sawLon bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "LatitudeDegrees":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			p.LatitudeDegrees = v
			sawLat = true
		case "LongitudeDegrees":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			p.LongitudeDegrees = v
			sawLon = true
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	switch {
	case !sawLat:
		return missingField(start.Name.Local, "LatitudeDegrees", "floating point number")
	case !sawLon:
		return missingField(start.Name.Local, "LongitudeDegrees", "floating point number")
	}
	return nil
}

func (t *TPX) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "Speed":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			t.Speed = &v
		case "Watts":
			v, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			t.Watts = &v
		default:
			return false, nil
		}
		return true, nil
	})
}

func (l *CourseLap) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawTime, sawDistance bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "TotalTimeSeconds":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.TotalTimeSeconds = v
			sawTime = true
		case "DistanceMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.DistanceMeters = v
			sawDistance = true
		case "BeginPosition":
			pos := new(Position)
			if err := d.DecodeElement(pos, &child); err != nil {
				return false, err
			}
			l.BeginPosition = pos
		case "BeginAltitudeMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.BeginAltitudeMeters = &v
		case "EndPosition":
			pos := new(Position)
			if err := d.DecodeElement(pos, &child); err != nil {
				return false, err
			}
			l.EndPosition = pos
		case "EndAltitudeMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			l.EndAltitudeMeters = &v
		case "AverageHeartRateBpm":
			var hr HeartRate
			if err := d.DecodeElement(&hr, &child); err != nil {
				return false, err
			}
			l.AverageHeartRate = &hr.Value
		case "MaximumHeartRateBpm":
			var hr HeartRate
			if err := d.DecodeElement(&hr, &child); err != nil {
				return false, err
			}
			l.MaximumHeartRate = &hr.Value
		case "Intensity":
			var v Intensity
			if err := d.DecodeElement(&v, &child); err != nil {
				return false, err
			}
			l.Intensity = &v
		case "Cadence":
			v, err := decodeUint8(d, child)
			if err != nil {
				return false, err
			}
			l.Cadence = &v
		case "Extensions":
			ext := new(Extensions)
			if err := d.DecodeElement(ext, &child); err != nil {
				return false, err
			}
			l.Extensions = ext
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	switch {
	case !sawTime:
		return missingField("Lap", "TotalTimeSeconds", "floating point number")
	case !sawDistance:
		return missingField("Lap", "DistanceMeters", "floating point number")
	}
	return nil
}

func (p *CoursePoint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawName, sawTime, sawType bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "Name":
			name, err := decodeText(d, child)
			if err != nil {
				return false, err
			}
			p.Name = name
			sawName = true
		case "Time":
			ts, err := decodeTime(d, child)
			if err != nil {
				return false, err
			}
			p.Time = ts
			sawTime = true
		case "Position":
			pos := new(Position)
			if err := d.DecodeElement(pos, &child); err != nil {
				return false, err
			}
			p.Position = pos
		case "AltitudeMeters":
			v, err := decodeFloat(d, child)
			if err != nil {
				return false, err
			}
			p.AltitudeMeters = &v
		case "PointType":
			var v CoursePointType
			if err := d.DecodeElement(&v, &child); err != nil {
				return false, err
			}
			p.PointType = v
			sawType = true
		case "Notes":
			notes, err := decodeText(d, child)
			if err != nil {
				return false, err
			}
			p.Notes = &notes
		case "Extensions":
			ext := new(Extensions)
			if err := d.DecodeElement(ext, &child); err != nil {
				return false, err
			}
			p.Extensions = ext
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	switch {
	case !sawName:
		return missingField("CoursePoint", "Name", "string")
	case !sawTime:
		return missingField("CoursePoint", "Time", "RFC 3339 timestamp")
	case !sawType:
		return missingField("CoursePoint", "PointType", "course point type")
	}
	return nil
}

func (v *Version) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sawMajor, sawMinor bool
	err := decodeChildren(d, start, func(child xml.StartElement) (bool, error) {
		switch child.Name.Local {
		case "VersionMajor":
			n, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			v.VersionMajor = n
			sawMajor = true
		case "VersionMinor":
			n, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			v.VersionMinor = n
			sawMinor = true
		case "BuildMajor":
			n, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			v.BuildMajor = &n
		case "BuildMinor":
			n, err := decodeUint16(d, child)
			if err != nil {
				return false, err
			}
			v.BuildMinor = &n
		default:
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	switch {
	case !sawMajor:
		return missingField("Version", "VersionMajor", "integer in 0..65535")
	case !sawMinor:
		return missingField("Version", "VersionMinor", "integer in 0..65535")
	}
	return nil
}
