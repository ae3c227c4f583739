// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hostinfo

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Vendor classifies the CPU manufacturer. Every CPU maps to exactly one of
// the three values.
type Vendor string

const (
	VendorIntel Vendor = "Intel"
	VendorAmd   Vendor = "Amd"
	VendorOther Vendor = "Other"
)

// Extension is one instruction-set extension and whether the host CPU
// supports it.
type Extension struct {
	Name      string
	Supported bool
}

// CPUCaps describes the host CPU.
type CPUCaps struct {
	// Model is the full CPU model name (e.g. "Intel(R) Core(TM) i7 ...").
	Model string
	// Brand is the 12-character CPUID vendor string (e.g. "GenuineIntel").
	Brand string
	// Vendor is the manufacturer classification.
	Vendor Vendor
	// Extensions lists the tracked instruction-set extensions in a stable
	// reporting order.
	Extensions []Extension
}

// DetectCPU queries the host CPU once and returns its capabilities.
func DetectCPU() CPUCaps {
	cpu := cpuid.CPU
	return CPUCaps{
		Model:  cpu.BrandName,
		Brand:  cpu.VendorString,
		Vendor: classifyVendor(cpu.VendorID),
		Extensions: []Extension{
			{Name: "AES", Supported: cpu.Supports(cpuid.AESNI)},
			{Name: "AVX", Supported: cpu.Supports(cpuid.AVX)},
			{Name: "AVX2", Supported: cpu.Supports(cpuid.AVX2)},
			{Name: "BMI1", Supported: cpu.Supports(cpuid.BMI1)},
			{Name: "BMI2", Supported: cpu.Supports(cpuid.BMI2)},
			{Name: "FMA", Supported: cpu.Supports(cpuid.FMA3)},
			{Name: "FMA4", Supported: cpu.Supports(cpuid.FMA4)},
			{Name: "SSE", Supported: cpu.Supports(cpuid.SSE)},
			{Name: "SSE2", Supported: cpu.Supports(cpuid.SSE2)},
			{Name: "SSE3", Supported: cpu.Supports(cpuid.SSE3)},
			{Name: "SSSE3", Supported: cpu.Supports(cpuid.SSSE3)},
			{Name: "SSE41", Supported: cpu.Supports(cpuid.SSE4)},
			{Name: "SSE42", Supported: cpu.Supports(cpuid.SSE42)},
		},
	}
}

func classifyVendor(v cpuid.Vendor) Vendor {
	switch v {
	case cpuid.Intel:
		return VendorIntel
	case cpuid.AMD:
		return VendorAmd
	default:
		return VendorOther
	}
}

// OSPlatform returns the coarse platform label reported in telemetry.
func OSPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "Apple"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	default:
		return "Unknown"
	}
}
