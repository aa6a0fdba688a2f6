// This file is part of Gossim.
//
// Gossim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gossim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gossim.  If not, see <https://www.gnu.org/licenses/>.

// Package performance hosts a live runtime monitor for long simulations.
// Start() serves statsview's collection of Go runtime charts over HTTP;
// point a browser at the address while a big design crawls through its
// timeline.
//
// Monitoring is strictly an observer: nothing here touches the simulator
// or the signal graph.
package performance

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gossim/gossim/logger"
)

var mgr *statsview.ViewManager

// Start launches the monitor on the given listen address, e.g.
// "localhost:18066". Starting twice is a no-op.
func Start(addr string) {
	if mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr = statsview.New()
	go mgr.Start()

	logger.Logf("performance", "monitoring on http://%s/debug/statsview", addr)
}

// Stop shuts the monitor down. Stopping a monitor that never started is a
// no-op.
func Stop() {
	if mgr == nil {
		return
	}
	mgr.Stop()
	mgr = nil
	logger.Log("performance", "monitoring stopped")
}
