// file: controllers/results_controller.go
package controllers

import (
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// GetResults serves the ranked results board for the evaluator dashboard.
func GetResults(c *gin.Context) {
	track := c.DefaultQuery("track", "overall")

	results, err := services.GetResults(track)
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to load results")
		return
	}
	utils.Success(c, "success", results)
}
