// Copyright 2024 RADE Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emlayers

import "fmt"

// BeamFunction encodes the intended use of a beam.
type BeamFunction uint8

// Beam function codes per SISO-REF-010.
const (
	BeamFunctionOther BeamFunction = iota
	BeamFunctionSearch
	BeamFunctionHeightFinding
	BeamFunctionAcquisition
	BeamFunctionTracking
	BeamFunctionAcquisitionAndTracking
	BeamFunctionCommandGuidance
	BeamFunctionIllumination
	BeamFunctionRanging
	BeamFunctionMissileBeacon
	BeamFunctionMissileFusing
	BeamFunctionActiveRadarMissileSeeker
	BeamFunctionJamming
	BeamFunctionIFF
	BeamFunctionNavigationWeather
	BeamFunctionMeteorological
	BeamFunctionDataTransmission
	BeamFunctionNavigationalDirectionalBeacon
	BeamFunctionTimeSharedSearch
	BeamFunctionTimeSharedAcquisition
	BeamFunctionTimeSharedTrack
	BeamFunctionTimeSharedCommandGuidance
	BeamFunctionTimeSharedIllumination
	BeamFunctionTimeSharedJamming
)

var beamFunctionNames = map[BeamFunction]string{
	BeamFunctionOther:                         "Other",
	BeamFunctionSearch:                        "Search",
	BeamFunctionHeightFinding:                 "HeightFinding",
	BeamFunctionAcquisition:                   "Acquisition",
	BeamFunctionTracking:                      "Tracking",
	BeamFunctionAcquisitionAndTracking:        "AcquisitionAndTracking",
	BeamFunctionCommandGuidance:               "CommandGuidance",
	BeamFunctionIllumination:                  "Illumination",
	BeamFunctionRanging:                       "Ranging",
	BeamFunctionMissileBeacon:                 "MissileBeacon",
	BeamFunctionMissileFusing:                 "MissileFusing",
	BeamFunctionActiveRadarMissileSeeker:      "ActiveRadarMissileSeeker",
	BeamFunctionJamming:                       "Jamming",
	BeamFunctionIFF:                           "IFF",
	BeamFunctionNavigationWeather:             "NavigationWeather",
	BeamFunctionMeteorological:                "Meteorological",
	BeamFunctionDataTransmission:              "DataTransmission",
	BeamFunctionNavigationalDirectionalBeacon: "NavigationalDirectionalBeacon",
	BeamFunctionTimeSharedSearch:              "TimeSharedSearch",
	BeamFunctionTimeSharedAcquisition:         "TimeSharedAcquisition",
	BeamFunctionTimeSharedTrack:               "TimeSharedTrack",
	BeamFunctionTimeSharedCommandGuidance:     "TimeSharedCommandGuidance",
	BeamFunctionTimeSharedIllumination:        "TimeSharedIllumination",
	BeamFunctionTimeSharedJamming:             "TimeSharedJamming",
}

// Valid reports whether the code is in the closed enumeration.
func (f BeamFunction) Valid() bool {
	return f <= BeamFunctionTimeSharedJamming
}

// String returns the enumeration name. Unknown codes are displayed as Other
// with the raw value attached; the raw value is preserved for re-emission.
func (f BeamFunction) String() string {
	if name, ok := beamFunctionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Other (%d)", uint8(f))
}

// HighDensity is the high-density track/jam flag. When selected, the beam is
// tracking or jamming everything in its field of regard and the enumerated
// track/jam list is omitted from the wire.
type HighDensity uint8

const (
	HighDensityNotSelected HighDensity = 0
	HighDensitySelected    HighDensity = 1
)

// Valid reports whether the flag is one of the two defined values.
func (h HighDensity) Valid() bool {
	return h <= HighDensitySelected
}

func (h HighDensity) String() string {
	switch h {
	case HighDensityNotSelected:
		return "NotSelected"
	case HighDensitySelected:
		return "Selected"
	default:
		return fmt.Sprintf("HighDensity(%d)", uint8(h))
	}
}

// BeamStatus carries the beam state. Bit 0 is the active flag (0 active,
// 1 deactivated); bits 1-7 are reserved and ignored.
type BeamStatus uint8

const (
	BeamStatusActive      BeamStatus = 0
	BeamStatusDeactivated BeamStatus = 1
)

// Active reports whether bit 0 indicates an active beam.
func (s BeamStatus) Active() bool {
	return s&0x01 == 0
}

func (s BeamStatus) String() string {
	if s.Active() {
		return "Active"
	}
	return "Deactivated"
}
