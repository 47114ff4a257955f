package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminListKeys returns every record key in the store
func (s *Server) adminListKeys(c *gin.Context) {
	keys, err := s.mongoStore.ListCountryKeys()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// adminIngestDataset schedules the ingestion of a listed dataset
func (s *Server) adminIngestDataset(c *gin.Context) {
	name := c.Param("name")

	if err := s.countries.CheckDirectory(name); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorDatasetNotListed, err)
		return
	}

	taskID, err := s.enqueuer.EnqueueIngest(name)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorEnqueueIngestion, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"dataset": name,
		"task_id": taskID,
	})
}
