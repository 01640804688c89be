// This file is part of smpsim.
//
// smpsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// smpsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with smpsim.  If not, see <https://www.gnu.org/licenses/>.

package aram

import "github.com/jetsetilly/smpsim/logic"

// Width of each port in symbols.
const (
	WidthDataIn     = 8
	WidthAddress    = 16
	WidthSPCRegAddr = 3
	WidthSMPRegAddr = 4
	WidthDSPRegAddr = 7
	WidthDataOut    = 8
)

// Ports are the signals connecting the model to the simulator. The output
// vectors are written in place by Step(). An output vector is only written
// when the clock gate passes, so between active cycles it keeps whatever
// value it last had.
type Ports struct {
	Clock       logic.Symbol
	WriteEnable logic.Symbol

	DataIn     logic.Vector
	Address    logic.Vector
	SPCRegAddr logic.Vector
	SMPRegAddr logic.Vector
	DSPRegAddr logic.Vector

	DataOut   logic.Vector
	SPCRegOut logic.Vector
	SMPRegOut logic.Vector
	DSPRegOut logic.Vector
}

// NewPorts allocates a Ports instance with every vector at the correct
// width. Inputs start in the Uninitialized state and outputs are driven low.
func NewPorts() *Ports {
	return &Ports{
		DataIn:     make(logic.Vector, WidthDataIn),
		Address:    make(logic.Vector, WidthAddress),
		SPCRegAddr: make(logic.Vector, WidthSPCRegAddr),
		SMPRegAddr: make(logic.Vector, WidthSMPRegAddr),
		DSPRegAddr: make(logic.Vector, WidthDSPRegAddr),
		DataOut:    logic.NewVector(0, WidthDataOut),
		SPCRegOut:  logic.NewVector(0, WidthDataOut),
		SMPRegOut:  logic.NewVector(0, WidthDataOut),
		DSPRegOut:  logic.NewVector(0, WidthDataOut),
	}
}
