// Package preview renders a loaded time-series table as a line plot.
//
// Each channel becomes one line against the table's time vector, with the
// channel name in the legend. Values are drawn as they were loaded.
//
//	tbl, err := timeseries.ReadFile("data.csv", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = preview.Save(tbl, "data.png", nil)
package preview
