//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "fmt"

// EntityFunction is the MEDIA_ENT_F_* function code describing what an
// entity does in the pipeline.
type EntityFunction uint32

// Entity function base offsets as defined by the kernel ABI. The
// "old" bases exist for functions that predate the current numbering
// scheme and must be preserved verbatim.
const (
	functionBase          EntityFunction = 0x00000000
	functionOldBase       EntityFunction = 0x00010000
	functionOldSubdevBase EntityFunction = 0x00020000
)

const (
	// FunctionUnknown is an entity with an unidentified function.
	FunctionUnknown EntityFunction = functionBase

	// DVB entities.
	FunctionDTVDemod    EntityFunction = functionBase + 0x00001
	FunctionTSDemux     EntityFunction = functionBase + 0x00002
	FunctionDTVCA       EntityFunction = functionBase + 0x00003
	FunctionDTVNetDecap EntityFunction = functionBase + 0x00004

	// I/O entities backing device nodes.
	FunctionIOV4L     EntityFunction = functionOldBase + 1
	FunctionIODTV     EntityFunction = functionBase + 0x01001
	FunctionIOVBI     EntityFunction = functionBase + 0x01002
	FunctionIOSWRadio EntityFunction = functionBase + 0x01003

	// IF-PLL analog video decoders.
	FunctionIFVidDecoder EntityFunction = functionBase + 0x02001
	FunctionIFAudDecoder EntityFunction = functionBase + 0x02002

	// Audio entities.
	FunctionAudioCapture  EntityFunction = functionBase + 0x03001
	FunctionAudioPlayback EntityFunction = functionBase + 0x03002
	FunctionAudioMixer    EntityFunction = functionBase + 0x03003

	// Processing entities.
	FunctionProcVideoComposer       EntityFunction = functionBase + 0x04001
	FunctionProcVideoPixelFormatter EntityFunction = functionBase + 0x04002
	FunctionProcVideoPixelEncConv   EntityFunction = functionBase + 0x04003
	FunctionProcVideoLUT            EntityFunction = functionBase + 0x04004
	FunctionProcVideoScaler         EntityFunction = functionBase + 0x04005
	FunctionProcVideoStatistics     EntityFunction = functionBase + 0x04006
	FunctionProcVideoEncoder        EntityFunction = functionBase + 0x04007
	FunctionProcVideoDecoder        EntityFunction = functionBase + 0x04008
	FunctionProcVideoISP            EntityFunction = functionBase + 0x04009

	// Switch and bridge entities.
	FunctionVidMux      EntityFunction = functionBase + 0x05001
	FunctionVidIFBridge EntityFunction = functionBase + 0x05002

	// Digital video decoder/encoder entities.
	FunctionDVDecoder EntityFunction = functionBase + 0x06001
	FunctionDVEncoder EntityFunction = functionBase + 0x06002

	// Sub-device entities using legacy function numbering.
	FunctionV4L2SubdevUnknown EntityFunction = functionOldSubdevBase
	FunctionCamSensor         EntityFunction = functionOldSubdevBase + 1
	FunctionFlash             EntityFunction = functionOldSubdevBase + 2
	FunctionLens              EntityFunction = functionOldSubdevBase + 3
	FunctionATVDecoder        EntityFunction = functionOldSubdevBase + 4
	FunctionTuner             EntityFunction = functionOldSubdevBase + 5
)

var functionNames = map[EntityFunction]string{
	FunctionUnknown:                 "unknown",
	FunctionDTVDemod:                "DTV demodulator",
	FunctionTSDemux:                 "transport stream demuxer",
	FunctionDTVCA:                   "DTV conditional access",
	FunctionDTVNetDecap:             "DTV network decapsulator",
	FunctionIOV4L:                   "V4L2 I/O",
	FunctionIODTV:                   "DTV I/O",
	FunctionIOVBI:                   "VBI I/O",
	FunctionIOSWRadio:               "software radio I/O",
	FunctionIFVidDecoder:            "IF-PLL video decoder",
	FunctionIFAudDecoder:            "IF-PLL audio decoder",
	FunctionAudioCapture:            "audio capture",
	FunctionAudioPlayback:           "audio playback",
	FunctionAudioMixer:              "audio mixer",
	FunctionProcVideoComposer:       "video composer",
	FunctionProcVideoPixelFormatter: "video pixel formatter",
	FunctionProcVideoPixelEncConv:   "video pixel encoding converter",
	FunctionProcVideoLUT:            "video look-up table",
	FunctionProcVideoScaler:         "video scaler",
	FunctionProcVideoStatistics:     "video statistics",
	FunctionProcVideoEncoder:        "video encoder",
	FunctionProcVideoDecoder:        "video decoder",
	FunctionProcVideoISP:            "video ISP",
	FunctionVidMux:                  "video multiplexer",
	FunctionVidIFBridge:             "video interface bridge",
	FunctionDVDecoder:               "digital video decoder",
	FunctionDVEncoder:               "digital video encoder",
	FunctionV4L2SubdevUnknown:       "unknown sub-device",
	FunctionCamSensor:               "camera sensor",
	FunctionFlash:                   "flash controller",
	FunctionLens:                    "lens controller",
	FunctionATVDecoder:              "analog video decoder",
	FunctionTuner:                   "tuner",
}

func (f EntityFunction) String() string {
	if name, found := functionNames[f]; found {
		return name
	}
	return fmt.Sprintf("unknown function (0x%08x)", uint32(f))
}
